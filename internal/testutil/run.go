package testutil

// ConstantRunGenerator returns the same run token on every call.
//
// engine.FixedGenerator hands out its tokens once each and panics when
// exhausted; this generator suits tests that build several engines which
// should all log under one run.
type ConstantRunGenerator struct {
	token string
}

// NewConstantRunGenerator creates a generator for token.
// If token is empty, Generate() returns "test-run-default".
func NewConstantRunGenerator(token string) *ConstantRunGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &ConstantRunGenerator{token: token}
}

// Generate returns the fixed run token.
func (g *ConstantRunGenerator) Generate() string {
	return g.token
}
