package comb

import (
	"iter"

	"github.com/tychoish/itertools/intish"
)

// Combinations generates every k-length subsequence of its input, in
// lexicographic order of position: for an input [a b c] and k=2 it
// produces [a b], [a c], [b c]. Elements are treated as distinct by
// position, not by value.
//
// A k of zero produces a single empty combination; a k larger than
// the input produces nothing.
type Combinations[T any] struct {
	indices []int
	pool    *LazyBuffer[T]
	first   bool
	done    bool
}

// NewCombinations creates a combinations generator over the sequence.
// The first k items are buffered immediately. NewCombinations panics
// if k is negative.
func NewCombinations[T any](seq iter.Seq[T], k int) *Combinations[T] {
	CheckLength("combination", k)
	return newCombinations(NewLazyBuffer(seq), k)
}

func newCombinations[T any](pool *LazyBuffer[T], k int) *Combinations[T] {
	c := &Combinations[T]{pool: pool}
	c.Reset(k)
	return c
}

// K returns the length of the combinations.
func (c *Combinations[T]) K() int { return len(c.indices) }

// N returns the number of input items buffered so far.
func (c *Combinations[T]) N() int { return c.pool.Len() }

// Indices returns the buffer positions of the most recently produced
// combination.
func (c *Combinations[T]) Indices() []int { return append([]int(nil), c.indices...) }

// Reset restarts generation with a new length, keeping every input
// item buffered so far.
func (c *Combinations[T]) Reset(k int) {
	CheckLength("combination", k)
	c.first, c.done = true, false
	c.indices = c.indices[:0]
	for i := 0; i < k; i++ {
		c.indices = append(c.indices, i)
	}
	c.pool.Prefill(k)
}

// Next advances to the next combination, returning false when there
// are none left.
func (c *Combinations[T]) Next() bool {
	if c.done {
		return false
	}
	if !c.advance() {
		c.done = true
		return false
	}
	return true
}

func (c *Combinations[T]) advance() bool {
	k := len(c.indices)
	if c.first {
		c.first = false
		return k <= c.pool.Len()
	}
	if k == 0 {
		return false
	}

	if c.indices[k-1] == c.pool.Len()-1 {
		c.pool.GetNext()
	}

	n := c.pool.Len()
	i := k - 1
	for i >= 0 && c.indices[i] == i+n-k {
		i--
	}
	if i < 0 {
		return false
	}

	c.indices[i]++
	for j := i + 1; j < k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return true
}

// Nth skips n combinations and advances to the one after them, as if
// Next had been called n+1 times.
func (c *Combinations[T]) Nth(n int) bool {
	for ; n > 0; n-- {
		if !c.Next() {
			return false
		}
	}
	return c.Next()
}

// Value returns the current combination.
func (c *Combinations[T]) Value() []T {
	return c.pool.Select(make([]T, 0, len(c.indices)), c.indices)
}

// Seq returns a sequence of the remaining combinations.
func (c *Combinations[T]) Seq() iter.Seq[[]T] { return Seq[T](c) }

// Close releases the input sequence.
func (c *Combinations[T]) Close() error { return c.pool.Close() }

// Clone returns an independent generator positioned at the same
// combination. The clone shares the input with this generator.
func (c *Combinations[T]) Clone() *Combinations[T] {
	return &Combinations[T]{
		indices: append([]int(nil), c.indices...),
		pool:    c.pool.Clone(),
		first:   c.first,
		done:    c.done,
	}
}

// SizeHint reports bounds on the number of combinations left, based on
// what is known about the length of the input.
func (c *Combinations[T]) SizeHint() intish.SizeHint {
	if c.done {
		return intish.Exact(0)
	}
	return hintFor(c.pool.TotalHint(), c.remainingFor)
}

// Count returns the exact number of combinations left, without
// advancing the generator. Count buffers the whole input. The second
// value is false if the count overflows an int.
func (c *Combinations[T]) Count() (int, bool) {
	if c.done {
		return 0, true
	}
	return c.remainingFor(c.pool.Total())
}

// remainingFor computes the number of combinations left for an input
// of length n.
func (c *Combinations[T]) remainingFor(n int) (int, bool) {
	k := len(c.indices)
	if c.first {
		return intish.Binomial(n, k)
	}

	sum := 0
	for i, idx := range c.indices {
		count, ok := intish.Binomial(n-1-idx, k-i)
		if !ok {
			return count, false
		}
		if sum, ok = intish.CheckedAdd(sum, count); !ok {
			return sum, false
		}
	}
	return sum, true
}
