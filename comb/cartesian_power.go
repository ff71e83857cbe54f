package comb

import (
	"iter"

	"github.com/tychoish/itertools/intish"
)

// CartesianPower generates every pow-length list of input items,
// repetitions included, in lexicographic order of position: for [a b]
// and pow=2 it produces [a a], [a b], [b a], [b b].
//
// The input is read one item per step until it is exhausted; after
// that the lists are produced by an odometer over the buffered items.
// A pow of zero produces a single empty list, without reading the
// input; an empty input with a positive pow produces nothing.
type CartesianPower[T any] struct {
	pow   int
	items *LazyBuffer[T]
	// indices of the current list, each in 0..base-1
	indices []int
	started bool
	// all of the input is buffered, so base is known
	collected bool
	done      bool
}

// NewCartesianPower creates a generator over the sequence. It panics
// if pow is negative.
func NewCartesianPower[T any](seq iter.Seq[T], pow int) *CartesianPower[T] {
	CheckLength("cartesian power", pow)
	return &CartesianPower[T]{pow: pow, items: NewLazyBuffer(seq)}
}

// Next advances to the next list, returning false when there are none
// left.
func (cp *CartesianPower[T]) Next() bool {
	if cp.done {
		return false
	}
	if !cp.advance() {
		cp.done = true
		return false
	}
	return true
}

func (cp *CartesianPower[T]) advance() bool {
	switch {
	case !cp.started:
		cp.started = true
		if cp.pow == 0 {
			cp.collected = true
			return true
		}
		if !cp.items.GetNext() {
			return false
		}
		cp.indices = make([]int, cp.pow)
		return true
	case cp.pow == 0:
		return false
	case !cp.collected:
		if cp.items.GetNext() {
			cp.indices[cp.pow-1]++
			return true
		}

		cp.collected = true
		if base := cp.items.Len(); base == 1 || cp.pow == 1 {
			return false
		}
		// first wrap around: 0 .. 0 1 0
		cp.indices[cp.pow-1] = 0
		cp.indices[cp.pow-2] = 1
		return true
	default:
		return cp.increment(1)
	}
}

// increment adds n to the odometer, returning false if it overflows.
func (cp *CartesianPower[T]) increment(n int) bool {
	base := cp.items.Len()
	carry := n
	for i := len(cp.indices) - 1; i >= 0 && carry > 0; i-- {
		// digit < 2*base, so neither sum below can wrap
		digit := cp.indices[i] + carry%base
		carry = carry/base + digit/base
		cp.indices[i] = digit % base
	}
	return carry == 0
}

// Nth skips n lists and advances to the one after them. Once the
// whole input is buffered, Nth skips ahead in constant time per
// digit instead of stepping through the skipped lists.
func (cp *CartesianPower[T]) Nth(n int) bool {
	for ; n > 0 && !(cp.started && cp.collected); n-- {
		if !cp.Next() {
			return false
		}
	}
	if n > 0 && !cp.done {
		if cp.pow == 0 || !cp.increment(n) {
			cp.done = true
			return false
		}
	}
	return cp.Next()
}

// Value returns the current list.
func (cp *CartesianPower[T]) Value() []T {
	return cp.items.Select(make([]T, 0, cp.pow), cp.indices)
}

// Seq returns a sequence of the remaining lists.
func (cp *CartesianPower[T]) Seq() iter.Seq[[]T] { return Seq[T](cp) }

// Close releases the input sequence.
func (cp *CartesianPower[T]) Close() error { return cp.items.Close() }

// Clone returns an independent generator positioned at the same list.
func (cp *CartesianPower[T]) Clone() *CartesianPower[T] {
	out := *cp
	out.items = cp.items.Clone()
	out.indices = append([]int(nil), cp.indices...)
	return &out
}

// SizeHint reports bounds on the number of lists left.
func (cp *CartesianPower[T]) SizeHint() intish.SizeHint {
	if cp.done {
		return intish.Exact(0)
	}
	return hintFor(cp.items.TotalHint(), cp.remainingFor)
}

// Count returns the exact number of lists left without advancing the
// generator. Count buffers the whole input.
func (cp *CartesianPower[T]) Count() (int, bool) {
	if cp.done {
		return 0, true
	}
	return cp.remainingFor(cp.items.Total())
}

// remainingFor computes the lists left for an input of base items:
// base^pow minus the rank of the current list plus one.
func (cp *CartesianPower[T]) remainingFor(base int) (int, bool) {
	total, ok := intish.Pow(base, cp.pow)
	switch {
	case !cp.started:
		return total, ok
	case cp.pow == 0:
		return 0, true
	case !ok:
		return total, false
	case !cp.collected:
		// one list per item buffered so far
		return intish.Exact(total).SubScalar(cp.items.Len()).Exact()
	}

	rank := 0
	for _, idx := range cp.indices {
		rank = rank*base + idx
	}
	return total - rank - 1, true
}
