// Package store provides SQLite-backed storage for the evaluation log.
//
// Records are append-only and content addressed: the primary key is the
// hash computed by ir.EvaluationID, so writing the same record twice is a
// no-op. Reads order by seq ASC, id ASC COLLATE BINARY.
//
// The database runs in WAL mode with synchronous=NORMAL, a 5 second busy
// timeout and a single open connection.
package store
