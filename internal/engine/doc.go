// Package engine stamps evaluations with identity and hands them to a
// recorder.
//
// One Engine corresponds to one CLI run. It owns a run token (UUIDv7 by
// default) and a logical clock, so records from the same run share a token
// and are ordered by seq, never by wall time.
package engine
