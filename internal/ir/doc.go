// Package ir holds the canonical value types and content-addressed record
// identity shared by the engine, store and case snapshots.
//
// ir imports nothing internal. Numbers are carried as int64 or as their
// textual form; floats never enter canonical JSON, so an evaluation's hash
// depends only on the strings arith produced for it.
package ir
