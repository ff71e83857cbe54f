// Package intish provides a collection of strongly typed integer
// arithmetic operations: the checked (overflow-aware) arithmetic and
// closed-form counting used to report exact sizes for combinatorial
// iterators, and the SizeHint type that carries those bounds.
package intish

import (
	"golang.org/x/exp/constraints"
)

// Abs returns the absolute value of the integer.
func Abs[T constraints.Signed](in T) T {
	if in < 0 {
		in = in * -1
	}
	return in
}

// Min returns the lowest value.
func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the highest value.
func Max[T constraints.Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Diff returns the absolute value of the difference between two values.
func Diff[T constraints.Integer](a, b T) T { return Max(a, b) - Min(a, b) }
