package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/genadd/internal/arith"
	"github.com/roach88/genadd/internal/engine"
	"github.com/roach88/genadd/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Type     string
	Database string

	// RunGenerator overrides the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunGenerator engine.RunTokenGenerator
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two operands of the given numeric type",
		Long: fmt.Sprintf(`Parse both operands as --type, add them with that type's native
semantics and print the sum. Integer sums wrap on overflow.

Supported types: %v

With --db the evaluation is appended to a SQLite log.

Example:
  genadd add 20 30
  genadd add --type float32 20.20 30.30
  genadd add --type int8 --db ./genadd.db 127 1
  genadd add --type int -- -5 3`, arith.Kinds),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Type, "type", "t", string(arith.KindInt), "numeric type of both operands")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite evaluation log (optional)")

	return cmd
}

func runAdd(opts *AddOptions, a, b string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	kind, err := arith.ParseKind(opts.Type)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidKind, fmt.Sprintf("invalid --type %q", opts.Type), err)
	}

	var recorder engine.Recorder
	if opts.Database != "" {
		formatter.VerboseLog("Opening evaluation log %s", opts.Database)
		st, err := store.Open(opts.Database)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
		}
		defer st.Close()
		recorder = st
	}

	eng := engine.New(recorder, opts.RunGenerator)
	formatter.VerboseLog("Run %s", eng.RunToken())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rec, err := eng.Evaluate(ctx, kind, a, b)
	if err != nil {
		if errors.Is(err, arith.ErrInvalidOperand) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidArgs, "invalid operand", err)
		}
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to record evaluation", err)
	}

	if formatter.IsJSON() {
		return formatter.Success(rec)
	}
	return formatter.Success(rec.Sum)
}
