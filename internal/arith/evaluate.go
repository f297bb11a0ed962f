package arith

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Evaluation is the textual record of one addition.
// Operands and Sum use Go's default %v formatting for Kind.
type Evaluation struct {
	Kind Kind   `json:"kind"`
	A    string `json:"a"`
	B    string `json:"b"`
	Sum  string `json:"sum"`
}

// Evaluate parses a and b as kind, adds them and formats the result.
//
// Integer operands accept strconv base prefixes (0x, 0o, 0b) and underscores.
// Float operands are rounded to the kind's precision before adding, so
// float32 "20.20" + "30.30" is computed in single precision.
func Evaluate(kind Kind, a, b string) (Evaluation, error) {
	ev, _, err := dispatch(kind, a, b, "", 0)
	return ev, err
}

// Verify evaluates a + b as kind and reports whether the sum matches expect.
//
// With tolerance 0 the sum must equal expect parsed as kind. Otherwise
// |sum - expect| <= tolerance is checked in float64.
func Verify(kind Kind, a, b, expect string, tolerance float64) (Evaluation, bool, error) {
	if expect == "" {
		return Evaluation{}, false, fmt.Errorf("%w: expected sum is empty", ErrInvalidOperand)
	}
	if tolerance < 0 {
		return Evaluation{}, false, fmt.Errorf("negative tolerance %v", tolerance)
	}
	return dispatch(kind, a, b, expect, tolerance)
}

type parser[T Number] func(string) (T, error)

func signed[T constraints.Signed](bits int) parser[T] {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 0, bits)
		return T(n), err
	}
}

func unsigned[T constraints.Unsigned](bits int) parser[T] {
	return func(s string) (T, error) {
		n, err := strconv.ParseUint(s, 0, bits)
		return T(n), err
	}
}

func float[T constraints.Float](bits int) parser[T] {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	}
}

// dispatch instantiates compute at the concrete type named by kind.
func dispatch(kind Kind, a, b, expect string, tol float64) (Evaluation, bool, error) {
	bits := kind.Bits()
	switch kind {
	case KindInt:
		return compute(kind, a, b, expect, tol, signed[int](bits))
	case KindInt8:
		return compute(kind, a, b, expect, tol, signed[int8](bits))
	case KindInt16:
		return compute(kind, a, b, expect, tol, signed[int16](bits))
	case KindInt32:
		return compute(kind, a, b, expect, tol, signed[int32](bits))
	case KindInt64:
		return compute(kind, a, b, expect, tol, signed[int64](bits))
	case KindUint:
		return compute(kind, a, b, expect, tol, unsigned[uint](bits))
	case KindUint8:
		return compute(kind, a, b, expect, tol, unsigned[uint8](bits))
	case KindUint16:
		return compute(kind, a, b, expect, tol, unsigned[uint16](bits))
	case KindUint32:
		return compute(kind, a, b, expect, tol, unsigned[uint32](bits))
	case KindUint64:
		return compute(kind, a, b, expect, tol, unsigned[uint64](bits))
	case KindFloat32:
		return compute(kind, a, b, expect, tol, float[float32](bits))
	case KindFloat64:
		return compute(kind, a, b, expect, tol, float[float64](bits))
	}
	return Evaluation{}, false, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

func compute[T Number](kind Kind, a, b, expect string, tol float64, parse parser[T]) (Evaluation, bool, error) {
	x, err := parse(a)
	if err != nil {
		return Evaluation{}, false, fmt.Errorf("%w: operand a %q as %s: %v", ErrInvalidOperand, a, kind, err)
	}
	y, err := parse(b)
	if err != nil {
		return Evaluation{}, false, fmt.Errorf("%w: operand b %q as %s: %v", ErrInvalidOperand, b, kind, err)
	}

	sum := Add(x, y)
	ev := Evaluation{
		Kind: kind,
		A:    fmt.Sprint(x),
		B:    fmt.Sprint(y),
		Sum:  fmt.Sprint(sum),
	}
	if expect == "" {
		return ev, true, nil
	}

	want, err := parse(expect)
	if err != nil {
		return ev, false, fmt.Errorf("%w: expected sum %q as %s: %v", ErrInvalidOperand, expect, kind, err)
	}
	if tol == 0 {
		return ev, sum == want, nil
	}
	diff := float64(sum) - float64(want)
	if diff < 0 {
		diff = -diff
	}
	return ev, diff <= tol, nil
}
