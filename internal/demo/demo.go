// Package demo is the fixed driver that shows Add instantiated twice:
// once for int and once for float32.
package demo

import (
	"fmt"
	"io"

	"github.com/roach88/genadd/internal/arith"
)

// Results returns the two sums the driver prints.
func Results() (int, float32) {
	x, y := 20, 30
	var a, b float32 = 20.20, 30.30

	return arith.Add(x, y), arith.Add(a, b)
}

// Run writes the int sum, a line break, then the float32 sum with no
// trailing newline: "50\n50.5".
func Run(w io.Writer) error {
	intSum, floatSum := Results()

	if _, err := fmt.Fprintln(w, intSum); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, floatSum)
	return err
}
