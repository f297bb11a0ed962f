package arith

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind names a concrete numeric type an addition is instantiated at.
type Kind string

const (
	KindInt     Kind = "int"
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindUint    Kind = "uint"
	KindUint8   Kind = "uint8"
	KindUint16  Kind = "uint16"
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
)

// Kinds lists every supported kind, signed integers first.
var Kinds = []Kind{
	KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
	KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
	KindFloat32, KindFloat64,
}

var (
	// ErrUnknownKind is returned for a kind name outside Kinds.
	ErrUnknownKind = errors.New("unknown kind")

	// ErrInvalidOperand is returned when an operand or expected sum cannot
	// be parsed as the requested kind (bad syntax or out of range).
	ErrInvalidOperand = errors.New("invalid operand")
)

// ParseKind returns the Kind named s. Matching is exact and case-sensitive.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownKind, s, Kinds)
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Bits returns the width of k in bits, or 0 for an unknown kind.
func (k Kind) Bits() int {
	switch k {
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	default:
		return 0
	}
}

func (k Kind) String() string {
	return string(k)
}
