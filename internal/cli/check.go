package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/genadd/internal/cases"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string
}

// CheckFileResult is the JSON payload for one case file.
type CheckFileResult struct {
	Path    string            `json:"path"`
	Passed  int               `json:"passed"`
	Failed  int               `json:"failed"`
	Results []CheckCaseResult `json:"results"`
}

// CheckCaseResult is the JSON payload for one case.
type CheckCaseResult struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	A      string `json:"a"`
	B      string `json:"b"`
	Expect string `json:"expect"`
	Sum    string `json:"sum,omitempty"`
	Passed bool   `json:"passed"`
	Error  string `json:"error,omitempty"`
}

// CheckSummary is the JSON payload of the check command.
type CheckSummary struct {
	Files  []CheckFileResult `json:"files"`
	Passed int               `json:"passed"`
	Failed int               `json:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Verify sums listed in case files",
		Long: `Load one or more case files (.yaml, .yml, .toml or .cue) and verify
that each case's operands add up to its expected sum.

Exit codes:
  0 - all cases passed
  1 - one or more cases failed
  2 - a case file could not be loaded

Example:
  genadd check ./cases.yaml
  genadd check --filter float ./cases.yaml ./more.cue`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only check cases whose name contains this string")

	return cmd
}

func runCheck(opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	files, err := cases.LoadFiles(paths)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, "failed to load case file", err)
	}

	summary := CheckSummary{Files: []CheckFileResult{}}
	for _, f := range files {
		formatter.VerboseLog("Checking %d case(s) in %s", len(f.Cases), f.Path)
		report := cases.Check(f.Cases, opts.Filter)
		summary.Files = append(summary.Files, toCheckFileResult(f.Path, report))
		summary.Passed += report.Passed
		summary.Failed += report.Failed
	}

	if formatter.IsJSON() {
		if err := formatter.Success(summary); err != nil {
			return err
		}
	} else {
		writeCheckText(formatter.Writer, summary)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d case(s) failed", summary.Failed, summary.Passed+summary.Failed))
	}
	return nil
}

func toCheckFileResult(path string, report cases.Report) CheckFileResult {
	out := CheckFileResult{
		Path:    path,
		Passed:  report.Passed,
		Failed:  report.Failed,
		Results: make([]CheckCaseResult, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		cr := CheckCaseResult{
			Name:   res.Case.Name,
			Kind:   string(res.Case.Kind),
			A:      res.Case.A,
			B:      res.Case.B,
			Expect: res.Case.Expect,
			Passed: res.Passed,
			Error:  res.Err,
		}
		if res.Err == "" {
			cr.A = res.Evaluation.A
			cr.B = res.Evaluation.B
			cr.Sum = res.Evaluation.Sum
		}
		out.Results = append(out.Results, cr)
	}
	return out
}

func writeCheckText(w io.Writer, summary CheckSummary) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	for _, f := range summary.Files {
		fmt.Fprintf(w, "%s\n", f.Path)
		for _, r := range f.Results {
			switch {
			case r.Error != "":
				fmt.Fprintf(w, "  %s %s (%s): %s\n", fail("ERROR"), r.Name, r.Kind, r.Error)
			case r.Passed:
				fmt.Fprintf(w, "  %s %s (%s): %s + %s = %s\n", pass("PASS"), r.Name, r.Kind, r.A, r.B, r.Sum)
			default:
				fmt.Fprintf(w, "  %s %s (%s): %s + %s = %s, want %s\n", fail("FAIL"), r.Name, r.Kind, r.A, r.B, r.Sum, r.Expect)
			}
		}
	}

	total := summary.Passed + summary.Failed
	line := fmt.Sprintf("%d case(s): %d passed, %d failed", total, summary.Passed, summary.Failed)
	if summary.Failed > 0 {
		line = fail(line)
	} else {
		line = pass(line)
	}
	fmt.Fprintln(w, line)
}
