package arith

import "golang.org/x/exp/constraints"

// Number is satisfied by every integer and floating-point type, including
// named types whose underlying type is one of them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b using T's native addition.
func Add[T Number](a, b T) T {
	return a + b
}
