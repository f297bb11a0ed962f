package store

import (
	"context"
	"fmt"

	"github.com/roach88/genadd/internal/ir"
)

// WriteEvaluation appends rec to the log.
// A record whose ID already exists is silently ignored. A different record
// reusing an existing (run_token, seq) pair is an error.
func (s *Store) WriteEvaluation(ctx context.Context, rec ir.Record) error {
	if rec.ID == "" {
		return fmt.Errorf("write evaluation: empty id")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluations (id, run_token, seq, kind, a, b, sum)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.RunToken,
		rec.Seq,
		rec.Kind,
		rec.A,
		rec.B,
		rec.Sum,
	)
	if err != nil {
		return fmt.Errorf("write evaluation: %w", err)
	}
	return nil
}
