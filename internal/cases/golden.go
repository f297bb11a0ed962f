package cases

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the report's snapshot with
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./internal/cases -update
func AssertGolden(t *testing.T, name string, report Report) {
	t.Helper()

	snapshot, err := Snapshot(report)
	if err != nil {
		t.Fatalf("snapshot %s: %v", name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, snapshot)
}
