// Package comb provides lazy combinatorial generators: combinations,
// combinations with replacement, permutations, the powerset, cartesian
// powers, and n-ary cartesian products.
//
// Every generator reads its input through a LazyBuffer, pulling from
// the upstream sequence only when the next selection needs an element
// that has not been seen yet, so generators work over unbounded and
// single-use sequences, and start producing values before the input is
// exhausted.
//
// The generators share a pull protocol:
//
//	gen := comb.NewCombinations(slices.Values(items), 2)
//	defer gen.Close()
//	for gen.Next() {
//		fmt.Println(gen.Value())
//	}
//
// Next advances and reports whether a value is available, Value
// returns a newly allocated slice that the caller owns, and Close
// releases the upstream sequence. Seq adapts any generator to a
// range-over-func iterator. Generators are fused: once Next returns
// false it always returns false.
//
// SizeHint and Count report the number of remaining values using
// closed-form arithmetic with overflow checks (see the intish
// package), and Clone produces an independent generator that replays
// the same remaining values.
//
// None of the types in this package are safe for concurrent use.
package comb

import (
	"iter"

	"github.com/tychoish/itertools/ers"
	"github.com/tychoish/itertools/intish"
)

// Generator is the pull protocol implemented by every type in this
// package.
type Generator[T any] interface {
	Next() bool
	Value() []T
	Close() error
}

// Seq converts a generator into a sequence that yields every
// remaining value, and closes the generator when the iteration stops.
func Seq[T any](gen Generator[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		defer func() { _ = gen.Close() }()
		for gen.Next() {
			if !yield(gen.Value()) {
				return
			}
		}
	}
}

// CheckLength panics with an invariant violation wrapping
// ers.ErrInvalidArgument when a selection length is negative.
func CheckLength(name string, k int) {
	ers.Invariant(k >= 0, ers.ErrInvalidArgument, "%s length %d must not be negative", name, k)
}

// hintFor turns a count of what remains for an input of length n into
// a hint covering every length the input may still turn out to have.
func hintFor(total intish.SizeHint, remaining func(n int) (int, bool)) intish.SizeHint {
	out := intish.Unbounded(intish.Saturate(remaining(total.Lower)))
	if !total.Bounded {
		return out
	}
	return out.Min(intish.Checked(remaining(total.Upper)))
}
