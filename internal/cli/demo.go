package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/genadd/internal/demo"
)

// DemoResult is the JSON payload of the demo command.
type DemoResult struct {
	Int   int     `json:"int"`
	Float float32 `json:"float"`
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Add 20+30 as int and 20.20+30.30 as float32",
		Long: `Instantiate the generic add once for int and once for float32 and
print both sums. Text output is exactly "50\n50.5" with no trailing newline.

This is also what genadd does when run without a subcommand.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	if opts.Format == "json" {
		intSum, floatSum := demo.Results()
		formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return formatter.Success(DemoResult{Int: intSum, Float: floatSum})
	}
	return demo.Run(cmd.OutOrStdout())
}
