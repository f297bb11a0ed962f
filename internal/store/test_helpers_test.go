package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/genadd/internal/ir"
)

// createTestStore opens a store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRecord builds a record with a valid content ID.
func createTestRecord(runToken string, seq int64, kind, a, b, sum string) ir.Record {
	return ir.Record{
		ID:       ir.MustEvaluationID(runToken, seq, kind, a, b, sum),
		RunToken: runToken,
		Seq:      seq,
		Kind:     kind,
		A:        a,
		B:        b,
		Sum:      sum,
	}
}
