package cases

import (
	"strconv"
	"strings"

	"github.com/roach88/genadd/internal/arith"
	"github.com/roach88/genadd/internal/ir"
)

// Result is the outcome of one case.
type Result struct {
	Case       Case
	Evaluation arith.Evaluation
	Passed     bool
	// Err is set when the case could not be evaluated at all.
	Err string
}

// Report collects the results of a Check.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every checked case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Check verifies every case whose name contains filter.
// An empty filter selects all cases. Order is preserved.
func Check(cases []Case, filter string) Report {
	report := Report{Results: []Result{}}
	for _, c := range cases {
		if filter != "" && !strings.Contains(c.Name, filter) {
			continue
		}

		res := Result{Case: c}
		ev, ok, err := arith.Verify(c.Kind, c.A, c.B, c.Expect, c.Tolerance)
		res.Evaluation = ev
		if err != nil {
			res.Err = err.Error()
		} else {
			res.Passed = ok
		}

		if res.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// Snapshot renders the report as canonical JSON.
// Floats never appear: tolerances are written as text.
func Snapshot(report Report) ([]byte, error) {
	results := make([]any, len(report.Results))
	for i, res := range report.Results {
		m := map[string]any{
			"name":   res.Case.Name,
			"kind":   string(res.Case.Kind),
			"expect": res.Case.Expect,
			"passed": res.Passed,
		}
		if res.Err != "" {
			m["a"] = res.Case.A
			m["b"] = res.Case.B
			m["error"] = res.Err
		} else {
			m["a"] = res.Evaluation.A
			m["b"] = res.Evaluation.B
			m["sum"] = res.Evaluation.Sum
		}
		if res.Case.Tolerance != 0 {
			m["tolerance"] = strconv.FormatFloat(res.Case.Tolerance, 'g', -1, 64)
		}
		results[i] = m
	}

	return ir.MarshalCanonical(map[string]any{
		"passed":  report.Passed,
		"failed":  report.Failed,
		"results": results,
	})
}
