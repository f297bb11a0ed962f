package store

import (
	"context"
	"fmt"

	"github.com/roach88/genadd/internal/ir"
)

// RunSummary describes one run in the log.
type RunSummary struct {
	RunToken string `json:"run_token"`
	Count    int64  `json:"count"`
	LastSeq  int64  `json:"last_seq"`
}

// ReadRun returns every record of a run ordered by seq.
// Returns an empty slice, not nil, for an unknown run.
func (s *Store) ReadRun(ctx context.Context, runToken string) ([]ir.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_token, seq, kind, a, b, sum
		FROM evaluations
		WHERE run_token = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runToken)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	records := []ir.Record{}
	for rows.Next() {
		var rec ir.Record
		if err := rows.Scan(&rec.ID, &rec.RunToken, &rec.Seq, &rec.Kind, &rec.A, &rec.B, &rec.Sum); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evaluations: %w", err)
	}
	return records, nil
}

// ListRuns returns one summary per run, ordered by run token.
// UUIDv7 tokens sort by creation time.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_token, COUNT(*), MAX(seq)
		FROM evaluations
		GROUP BY run_token
		ORDER BY run_token COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunToken, &r.Count, &r.LastSeq); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
