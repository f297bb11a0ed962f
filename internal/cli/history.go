package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/genadd/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Run      string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show evaluations recorded with --db",
		Long: `List the runs in an evaluation log, or with --run, every evaluation
of one run in seq order.

Example:
  genadd history --db ./genadd.db
  genadd history --db ./genadd.db --run 0192f0c4-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite evaluation log (required)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "run token to show records for")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	// store.Open would create a missing file; history only reads.
	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database), nil)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Run == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to list runs", err)
		}
		if formatter.IsJSON() {
			return formatter.Success(runs)
		}
		w := formatter.Writer
		if len(runs) == 0 {
			fmt.Fprintln(w, "no runs recorded")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%s  %d evaluation(s)\n", r.RunToken, r.Count)
		}
		return nil
	}

	records, err := st.ReadRun(ctx, opts.Run)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeDatabase, "failed to read run", err)
	}
	if len(records) == 0 {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("run not found: %s", opts.Run), nil)
	}
	if formatter.IsJSON() {
		return formatter.Success(records)
	}
	for _, r := range records {
		fmt.Fprintf(formatter.Writer, "%d  %s  %s + %s = %s  %s\n", r.Seq, r.Kind, r.A, r.B, r.Sum, r.ID[:12])
	}
	return nil
}
