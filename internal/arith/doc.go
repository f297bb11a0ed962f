// Package arith provides the generic addition at the heart of genadd.
//
// Add is instantiated per numeric type at compile time. Everything else in
// this package exists to reach Add from text: Kind names a concrete numeric
// type, and Evaluate/Verify parse operands as that type, add them with the
// type's native semantics, and format the result back to text.
//
// Arithmetic is never checked. Fixed-width integers wrap on overflow and
// floats round per IEEE-754, exactly as the + operator does for the type.
package arith
