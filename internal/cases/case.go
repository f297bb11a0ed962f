package cases

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/roach88/genadd/internal/arith"
)

// Case is one expected addition.
type Case struct {
	Name      string
	Kind      arith.Kind
	A         string
	B         string
	Expect    string
	Tolerance float64
}

// File is a loaded case file.
type File struct {
	Path  string
	Cases []Case
}

// rawFile is the on-disk layout shared by every format. CUE decoding
// matches fields through the json tags.
type rawFile struct {
	Cases []rawCase `yaml:"cases" toml:"cases" json:"cases"`
}

type rawCase struct {
	Name      string  `yaml:"name" toml:"name" json:"name"`
	Type      string  `yaml:"type" toml:"type" json:"type"`
	A         any     `yaml:"a" toml:"a" json:"a"`
	B         any     `yaml:"b" toml:"b" json:"b"`
	Expect    any     `yaml:"expect" toml:"expect" json:"expect"`
	Tolerance float64 `yaml:"tolerance,omitempty" toml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

func (r rawCase) toCase() (Case, error) {
	if r.Name == "" {
		return Case{}, fmt.Errorf("name is required")
	}
	if r.Type == "" {
		return Case{}, fmt.Errorf("case %q: type is required", r.Name)
	}
	kind, err := arith.ParseKind(r.Type)
	if err != nil {
		return Case{}, fmt.Errorf("case %q: %w", r.Name, err)
	}
	if r.Tolerance < 0 {
		return Case{}, fmt.Errorf("case %q: tolerance must not be negative", r.Name)
	}

	c := Case{Name: r.Name, Kind: kind, Tolerance: r.Tolerance}
	fields := []struct {
		name string
		raw  any
		dst  *string
	}{
		{"a", r.A, &c.A},
		{"b", r.B, &c.B},
		{"expect", r.Expect, &c.Expect},
	}
	for _, f := range fields {
		text, err := operandText(f.raw)
		if err != nil {
			return Case{}, fmt.Errorf("case %q: %s: %w", r.Name, f.name, err)
		}
		if text == "" {
			return Case{}, fmt.Errorf("case %q: %s is required", r.Name, f.name)
		}
		*f.dst = text
	}
	return c, nil
}

// operandText renders a decoded scalar as the text arith parses.
func operandText(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case *big.Int:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported operand type %T", v)
	}
}
