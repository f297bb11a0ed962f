package ir

// Record is one persisted evaluation.
// Operands and Sum are kept in the textual form arith produced.
type Record struct {
	ID       string `json:"id"`
	RunToken string `json:"run_token"`
	Seq      int64  `json:"seq"`
	Kind     string `json:"kind"`
	A        string `json:"a"`
	B        string `json:"b"`
	Sum      string `json:"sum"`
}

// Canonical returns r as an IRObject.
func (r Record) Canonical() IRObject {
	return IRObject{
		"id":        IRString(r.ID),
		"run_token": IRString(r.RunToken),
		"seq":       IRInt(r.Seq),
		"kind":      IRString(r.Kind),
		"a":         IRString(r.A),
		"b":         IRString(r.B),
		"sum":       IRString(r.Sum),
	}
}

// Verify reports whether r.ID matches the hash of its contents.
func (r Record) Verify() bool {
	id, err := EvaluationID(r.RunToken, r.Seq, r.Kind, r.A, r.B, r.Sum)
	return err == nil && id == r.ID
}
