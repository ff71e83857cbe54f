package comb

import (
	"iter"
	"slices"

	"github.com/tychoish/itertools/intish"
)

type permState int

const (
	// nothing produced yet
	permStart permState = iota
	// the input is still being read, so its length is unknown
	permBuffered
	// the whole input is buffered, advance the cycle counters
	permLoaded
	permEnd
)

// Permutations generates every k-length ordered arrangement of
// distinct input positions: for [a b c] and k=2 it produces [a b],
// [a c], [b a], [b c], [c a], [c b].
//
// While the input is still being read, each step pulls exactly one
// more element and produces the permutation of the first k-1 items
// followed by the new one; these are the next permutations in order
// no matter how long the input turns out to be. Once the input is
// exhausted the generator continues with cycle counters over the
// full buffer.
type Permutations[T any] struct {
	vals  *LazyBuffer[T]
	state permState
	k     int
	// number of input items known while buffering
	minN int
	// permutation of 0..n-1, the first k of which are the current value
	indices []int
	// cycles[i] counts the arrangements left for position i
	cycles []int
}

// NewPermutations creates a generator over the sequence. It panics if
// k is negative.
func NewPermutations[T any](seq iter.Seq[T], k int) *Permutations[T] {
	CheckLength("permutation", k)
	return &Permutations[T]{vals: NewLazyBuffer(seq), k: k}
}

// Next advances to the next permutation, returning false when there
// are none left.
func (p *Permutations[T]) Next() bool {
	switch p.state {
	case permStart:
		if p.k == 0 {
			p.indices = p.indices[:0]
			p.state = permEnd
			return true
		}
		p.vals.Prefill(p.k)
		if p.vals.Len() != p.k {
			p.state = permEnd
			return false
		}
		p.state, p.minN = permBuffered, p.k
		p.setPrefix(p.k - 1)
		return true
	case permBuffered:
		if p.vals.GetNext() {
			p.setPrefix(p.minN)
			p.minN++
			return true
		}
		return p.load()
	case permLoaded:
		if advancePermutation(p.indices, p.cycles) {
			p.state = permEnd
			return false
		}
		return true
	default:
		return false
	}
}

// setPrefix sets the current value to the first k-1 items followed by
// the item at last.
func (p *Permutations[T]) setPrefix(last int) {
	p.indices = p.indices[:0]
	for i := 0; i < p.k-1; i++ {
		p.indices = append(p.indices, i)
	}
	p.indices = append(p.indices, last)
}

// load switches from buffering to cycling once the length of the
// input is known, skipping the permutations already produced.
func (p *Permutations[T]) load() bool {
	n := p.minN
	p.indices = make([]int, n)
	for i := range p.indices {
		p.indices[i] = i
	}
	p.cycles = make([]int, p.k)
	for i := range p.cycles {
		p.cycles[i] = n - 1 - i
	}

	for produced := n - p.k + 1; produced > 0; produced-- {
		if advancePermutation(p.indices, p.cycles) {
			p.state = permEnd
			return false
		}
	}
	p.state = permLoaded
	return true
}

// advancePermutation moves indices to the next permutation, returning
// true when every permutation has been produced.
func advancePermutation(indices, cycles []int) bool {
	n := len(indices)
	for i := len(cycles) - 1; i >= 0; i-- {
		if cycles[i] == 0 {
			cycles[i] = n - i - 1
			// rotate indices[i:] left by one
			first := indices[i]
			copy(indices[i:], indices[i+1:])
			indices[n-1] = first
			continue
		}
		swap := n - cycles[i]
		indices[i], indices[swap] = indices[swap], indices[i]
		cycles[i]--
		return false
	}
	return true
}

// Nth skips n permutations and advances to the one after them.
func (p *Permutations[T]) Nth(n int) bool {
	for ; n > 0; n-- {
		if !p.Next() {
			return false
		}
	}
	return p.Next()
}

// Value returns the current permutation.
func (p *Permutations[T]) Value() []T {
	width := min(p.k, len(p.indices))
	return p.vals.Select(make([]T, 0, width), p.indices[:width])
}

// Seq returns a sequence of the remaining permutations.
func (p *Permutations[T]) Seq() iter.Seq[[]T] { return Seq[T](p) }

// Close releases the input sequence.
func (p *Permutations[T]) Close() error { return p.vals.Close() }

// Clone returns an independent generator positioned at the same
// permutation.
func (p *Permutations[T]) Clone() *Permutations[T] {
	return &Permutations[T]{
		vals:    p.vals.Clone(),
		state:   p.state,
		k:       p.k,
		minN:    p.minN,
		indices: slices.Clone(p.indices),
		cycles:  slices.Clone(p.cycles),
	}
}

// SizeHint reports bounds on the number of permutations left.
func (p *Permutations[T]) SizeHint() intish.SizeHint {
	return hintFor(p.vals.TotalHint(), p.remainingFor)
}

// Count returns the exact number of permutations left without
// advancing the generator. Count buffers the whole input.
func (p *Permutations[T]) Count() (int, bool) {
	return p.remainingFor(p.vals.Total())
}

func (p *Permutations[T]) remainingFor(n int) (int, bool) {
	switch p.state {
	case permStart:
		return intish.FallingFactorial(n, p.k)
	case permBuffered:
		total, ok := intish.FallingFactorial(n, p.k)
		if !ok {
			return total, false
		}
		// minN-k+1 arrangements were produced while buffering
		return intish.Exact(total).SubScalar(p.minN - p.k + 1).Exact()
	case permLoaded:
		count := 0
		for i, c := range p.cycles {
			var ok bool
			if count, ok = intish.CheckedMul(count, len(p.indices)-i); !ok {
				return count, false
			}
			if count, ok = intish.CheckedAdd(count, c); !ok {
				return count, false
			}
		}
		return count, true
	default:
		return 0, true
	}
}
