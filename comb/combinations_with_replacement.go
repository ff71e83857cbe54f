package comb

import (
	"iter"

	"github.com/tychoish/itertools/intish"
)

// CombinationsWithReplacement generates every k-length multiset of
// its input's positions, in lexicographic order: for an input [a b c]
// and k=2 it produces [a a], [a b], [a c], [b b], [b c], [c c].
type CombinationsWithReplacement[T any] struct {
	indices []int
	pool    *LazyBuffer[T]
	first   bool
	done    bool
}

// NewCombinationsWithReplacement creates a generator over the
// sequence. It panics if k is negative.
func NewCombinationsWithReplacement[T any](seq iter.Seq[T], k int) *CombinationsWithReplacement[T] {
	CheckLength("combination", k)
	return &CombinationsWithReplacement[T]{
		indices: make([]int, k),
		pool:    NewLazyBuffer(seq),
		first:   true,
	}
}

// Next advances to the next combination, returning false when there
// are none left.
func (c *CombinationsWithReplacement[T]) Next() bool {
	if c.done {
		return false
	}
	if !c.advance() {
		c.done = true
		return false
	}
	return true
}

func (c *CombinationsWithReplacement[T]) advance() bool {
	if c.first {
		c.first = false
		// an empty input has no non-empty combinations
		return len(c.indices) == 0 || c.pool.GetNext()
	}
	if len(c.indices) == 0 {
		return false
	}

	c.pool.GetNext()
	last := c.pool.Len() - 1
	for i := len(c.indices) - 1; i >= 0; i-- {
		if c.indices[i] < last {
			value := c.indices[i] + 1
			for j := i; j < len(c.indices); j++ {
				c.indices[j] = value
			}
			return true
		}
	}
	return false
}

// Nth skips n combinations and advances to the one after them.
func (c *CombinationsWithReplacement[T]) Nth(n int) bool {
	for ; n > 0; n-- {
		if !c.Next() {
			return false
		}
	}
	return c.Next()
}

// Value returns the current combination.
func (c *CombinationsWithReplacement[T]) Value() []T {
	return c.pool.Select(make([]T, 0, len(c.indices)), c.indices)
}

// Seq returns a sequence of the remaining combinations.
func (c *CombinationsWithReplacement[T]) Seq() iter.Seq[[]T] { return Seq[T](c) }

// Close releases the input sequence.
func (c *CombinationsWithReplacement[T]) Close() error { return c.pool.Close() }

// Clone returns an independent generator positioned at the same
// combination.
func (c *CombinationsWithReplacement[T]) Clone() *CombinationsWithReplacement[T] {
	return &CombinationsWithReplacement[T]{
		indices: append([]int(nil), c.indices...),
		pool:    c.pool.Clone(),
		first:   c.first,
		done:    c.done,
	}
}

// SizeHint reports bounds on the number of combinations left.
func (c *CombinationsWithReplacement[T]) SizeHint() intish.SizeHint {
	if c.done {
		return intish.Exact(0)
	}
	return hintFor(c.pool.TotalHint(), c.remainingFor)
}

// Count returns the exact number of combinations left without
// advancing the generator. Count buffers the whole input.
func (c *CombinationsWithReplacement[T]) Count() (int, bool) {
	if c.done {
		return 0, true
	}
	return c.remainingFor(c.pool.Total())
}

func (c *CombinationsWithReplacement[T]) remainingFor(n int) (int, bool) {
	k := len(c.indices)
	if c.first {
		return multisets(n, k)
	}

	sum := 0
	for i, idx := range c.indices {
		count, ok := multisets(n-1-idx, k-i)
		if !ok {
			return count, false
		}
		if sum, ok = intish.CheckedAdd(sum, count); !ok {
			return sum, false
		}
	}
	return sum, true
}

// multisets counts the k-element multisets of n items: C(n+k-1, k).
func multisets(n, k int) (int, bool) {
	if n == 0 {
		return intish.Binomial(intish.Max(k-1, 0), k)
	}
	positions, ok := intish.CheckedAdd(n-1, k)
	if !ok {
		return positions, false
	}
	return intish.Binomial(positions, k)
}
