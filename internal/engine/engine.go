package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/genadd/internal/arith"
	"github.com/roach88/genadd/internal/ir"
)

// Recorder persists evaluation records. *store.Store implements it.
type Recorder interface {
	WriteEvaluation(ctx context.Context, rec ir.Record) error
}

// Engine evaluates additions for a single run.
type Engine struct {
	recorder Recorder
	clock    *Clock
	runToken string
}

// New creates an engine with a fresh run token from gen.
// A nil recorder disables persistence; a nil gen uses UUIDv7Generator.
func New(rec Recorder, gen RunTokenGenerator) *Engine {
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	return &Engine{
		recorder: rec,
		clock:    NewClock(),
		runToken: gen.Generate(),
	}
}

// RunToken returns the token shared by every record of this run.
func (e *Engine) RunToken() string {
	return e.runToken
}

// Evaluate adds a and b as kind and records the result.
// A failed evaluation does not advance the clock.
func (e *Engine) Evaluate(ctx context.Context, kind arith.Kind, a, b string) (ir.Record, error) {
	if err := ctx.Err(); err != nil {
		return ir.Record{}, err
	}

	ev, err := arith.Evaluate(kind, a, b)
	if err != nil {
		return ir.Record{}, err
	}

	rec := ir.Record{
		RunToken: e.runToken,
		Seq:      e.clock.Next(),
		Kind:     string(ev.Kind),
		A:        ev.A,
		B:        ev.B,
		Sum:      ev.Sum,
	}
	rec.ID, err = ir.EvaluationID(rec.RunToken, rec.Seq, rec.Kind, rec.A, rec.B, rec.Sum)
	if err != nil {
		return ir.Record{}, err
	}

	slog.Debug("evaluated", "kind", rec.Kind, "a", rec.A, "b", rec.B, "sum", rec.Sum, "seq", rec.Seq)

	if e.recorder == nil {
		return rec, nil
	}
	if err := e.recorder.WriteEvaluation(ctx, rec); err != nil {
		return ir.Record{}, fmt.Errorf("record evaluation: %w", err)
	}
	return rec, nil
}
