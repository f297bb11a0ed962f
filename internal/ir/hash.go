package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainEvaluation prefixes evaluation hashes. The version suffix leaves
// room for changing the hashed layout without colliding with old IDs.
const DomainEvaluation = "genadd/evaluation/v1"

// hashWithDomain returns hex(SHA256(domain + 0x00 + data)).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// EvaluationID computes the content-addressed ID of one evaluation.
// It is stable for identical inputs, and the run token and seq make it
// unique within a log even when the same sum is computed twice.
func EvaluationID(runToken string, seq int64, kind, a, b, sum string) (string, error) {
	obj := IRObject{
		"run_token": IRString(runToken),
		"seq":       IRInt(seq),
		"kind":      IRString(kind),
		"a":         IRString(a),
		"b":         IRString(b),
		"sum":       IRString(sum),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("EvaluationID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainEvaluation, canonical), nil
}

// MustEvaluationID is like EvaluationID but panics on error.
// Use only in tests.
func MustEvaluationID(runToken string, seq int64, kind, a, b, sum string) string {
	id, err := EvaluationID(runToken, seq, kind, a, b, sum)
	if err != nil {
		panic(err)
	}
	return id
}
