package comb

import (
	"iter"

	"github.com/tychoish/itertools/intish"
)

// Powerset generates every subset of its input, ordered by length and
// then lexicographically by position: for [a b c] it produces [], [a],
// [b], [c], [a b], [a c], [b c], [a b c].
type Powerset[T any] struct {
	combs *Combinations[T]
}

// NewPowerset creates a powerset generator over the sequence.
func NewPowerset[T any](seq iter.Seq[T]) *Powerset[T] {
	return &Powerset[T]{combs: newCombinations(NewLazyBuffer(seq), 0)}
}

// Next advances to the next subset, returning false when there are
// none left.
func (p *Powerset[T]) Next() bool {
	if p.combs.Next() {
		return true
	}

	if k := p.combs.K(); k < p.combs.N() || k == 0 {
		p.combs.Reset(k + 1)
		return p.combs.Next()
	}
	return false
}

// Nth skips n subsets and advances to the one after them.
func (p *Powerset[T]) Nth(n int) bool {
	for ; n > 0; n-- {
		if !p.Next() {
			return false
		}
	}
	return p.Next()
}

// Value returns the current subset.
func (p *Powerset[T]) Value() []T { return p.combs.Value() }

// Seq returns a sequence of the remaining subsets.
func (p *Powerset[T]) Seq() iter.Seq[[]T] { return Seq[T](p) }

// Close releases the input sequence.
func (p *Powerset[T]) Close() error { return p.combs.Close() }

// Clone returns an independent generator positioned at the same
// subset.
func (p *Powerset[T]) Clone() *Powerset[T] { return &Powerset[T]{combs: p.combs.Clone()} }

// SizeHint reports bounds on the number of subsets left.
func (p *Powerset[T]) SizeHint() intish.SizeHint {
	return hintFor(p.combs.pool.TotalHint(), p.remainingFor)
}

// Count returns the exact number of subsets left without advancing
// the generator. Count buffers the whole input.
func (p *Powerset[T]) Count() (int, bool) {
	return p.remainingFor(p.combs.pool.Total())
}

// remainingFor counts the rest of the current length, plus every
// subset of the lengths still to come.
func (p *Powerset[T]) remainingFor(n int) (int, bool) {
	sum, ok := p.combs.remainingFor(n)
	if !ok {
		return sum, false
	}
	if p.combs.done {
		sum = 0
	}
	for i := p.combs.K() + 1; i <= n; i++ {
		count, ok := intish.Binomial(n, i)
		if !ok {
			return count, false
		}
		if sum, ok = intish.CheckedAdd(sum, count); !ok {
			return sum, false
		}
	}
	return sum, true
}
