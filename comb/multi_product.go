package comb

import (
	"iter"
	"slices"

	"github.com/tychoish/itertools/intish"
)

// MultiProduct generates the cartesian product of several sequences
// with the same element type: one row per combination of one item from
// each sequence, with the rightmost sequence varying fastest.
//
// Each input is read at most once. Inputs after the first are replayed
// from their buffers when the product wraps around, so single-use
// sequences are fine. The first input is never replayed, and is read
// straight through without being recorded until the product is cloned
// or counted, so it may be unbounded. The product of no sequences is a
// single empty row; if any input is empty the product is empty.
type MultiProduct[T any] struct {
	lead    *leadFactor[T]
	// factors[0] stays nil while the first input is streamed by lead
	factors []*LazyBuffer[T]
	cur     []T
	started bool
	done    bool
}

// leadFactor pulls the first input directly.
type leadFactor[T any] struct {
	next func() (T, bool)
	stop func()
	// items read before the input was recorded
	seen int
	done bool
}

// NewMultiProduct creates a product generator over the sequences.
func NewMultiProduct[T any](seqs ...iter.Seq[T]) *MultiProduct[T] {
	mp := &MultiProduct[T]{factors: make([]*LazyBuffer[T], len(seqs))}
	for i, seq := range seqs {
		if i == 0 {
			next, stop := iter.Pull(seq)
			mp.lead = &leadFactor[T]{next: next, stop: stop}
			continue
		}
		mp.factors[i] = NewLazyBuffer(seq)
	}
	return mp
}

// Next advances to the next row, returning false when there are none
// left.
func (mp *MultiProduct[T]) Next() bool {
	if mp.done {
		return false
	}
	if !mp.advance() {
		mp.done = true
		return false
	}
	return true
}

func (mp *MultiProduct[T]) advance() bool {
	if !mp.started {
		mp.started = true
		mp.cur = make([]T, len(mp.factors))
		for i := range mp.factors {
			if !mp.step(i) {
				return false
			}
		}
		return true
	}

	for i := len(mp.factors) - 1; i >= 0; i-- {
		if !mp.step(i) {
			continue
		}
		for j := i + 1; j < len(mp.factors); j++ {
			mp.factors[j].Rewind(0)
			mp.step(j)
		}
		return true
	}
	return false
}

// step moves factor i forward by one item.
func (mp *MultiProduct[T]) step(i int) bool {
	if i == 0 && mp.streaming() {
		if mp.lead.done {
			return false
		}
		item, ok := mp.lead.next()
		if !ok {
			mp.lead.release()
			return false
		}
		mp.lead.seen++
		mp.cur[0] = item
		return true
	}

	f := mp.factors[i]
	if !f.GetNext() {
		return false
	}
	mp.cur[i] = f.At(f.Len() - 1)
	return true
}

func (lf *leadFactor[T]) release() {
	lf.done = true
	lf.stop()
}

func (mp *MultiProduct[T]) streaming() bool { return mp.lead != nil && mp.factors[0] == nil }

// record switches the first input from streaming to a LazyBuffer
// holding everything it produces from now on, so that it can be
// shared with a clone or drained by Count.
func (mp *MultiProduct[T]) record() {
	if !mp.streaming() {
		return
	}
	tp := &tape[T]{next: mp.lead.next, stop: mp.lead.stop, refs: 1, done: mp.lead.done}
	if tp.done {
		tp.next, tp.stop = nil, nil
	}
	mp.factors[0] = &LazyBuffer[T]{tape: tp}
}

// position reports how many items factor i has produced for the
// current row.
func (mp *MultiProduct[T]) position(i int) int {
	if i > 0 {
		return mp.factors[i].Len()
	}
	if mp.streaming() {
		return mp.lead.seen
	}
	return mp.lead.seen + mp.factors[0].Len()
}

func (mp *MultiProduct[T]) totalHint(i int) intish.SizeHint {
	switch {
	case i > 0:
		return mp.factors[i].TotalHint()
	case !mp.streaming():
		return mp.factors[0].TotalHint().AddScalar(mp.lead.seen)
	case mp.lead.done:
		return intish.Exact(mp.lead.seen)
	default:
		return intish.Unbounded(mp.lead.seen)
	}
}

// Nth skips n rows and advances to the one after them.
func (mp *MultiProduct[T]) Nth(n int) bool {
	for ; n > 0; n-- {
		if !mp.Next() {
			return false
		}
	}
	return mp.Next()
}

// Value returns the current row.
func (mp *MultiProduct[T]) Value() []T { return slices.Clone(mp.cur) }

// Seq returns a sequence of the remaining rows.
func (mp *MultiProduct[T]) Seq() iter.Seq[[]T] { return Seq[T](mp) }

// Close releases every input sequence.
func (mp *MultiProduct[T]) Close() error {
	if mp.streaming() && !mp.lead.done {
		mp.lead.release()
	}
	for _, f := range mp.factors {
		if f != nil {
			_ = f.Close()
		}
	}
	return nil
}

// Clone returns an independent generator positioned at the same row.
// Cloning starts recording the first input.
func (mp *MultiProduct[T]) Clone() *MultiProduct[T] {
	mp.record()
	out := &MultiProduct[T]{
		factors: make([]*LazyBuffer[T], 0, len(mp.factors)),
		cur:     slices.Clone(mp.cur),
		started: mp.started,
		done:    mp.done,
	}
	if mp.lead != nil {
		out.lead = &leadFactor[T]{seen: mp.lead.seen, done: mp.lead.done}
	}
	for _, f := range mp.factors {
		out.factors = append(out.factors, f.Clone())
	}
	return out
}

// SizeHint reports bounds on the number of rows left.
func (mp *MultiProduct[T]) SizeHint() intish.SizeHint {
	if mp.done {
		return intish.Exact(0)
	}
	totals := make([]intish.SizeHint, len(mp.factors))
	for i := range mp.factors {
		totals[i] = mp.totalHint(i)
	}
	return mp.remaining(totals)
}

// Count returns the exact number of rows left without advancing the
// generator. Count buffers every input, the first included.
func (mp *MultiProduct[T]) Count() (int, bool) {
	if mp.done {
		return 0, true
	}
	mp.record()
	totals := make([]intish.SizeHint, len(mp.factors))
	for i, f := range mp.factors {
		total := f.Total()
		if i == 0 {
			total += mp.lead.seen
		}
		totals[i] = intish.Exact(total)
	}
	return mp.remaining(totals).Exact()
}

// remaining computes the rows left when the inputs have the given
// lengths. Before the first row that is the product of the lengths;
// afterwards each position is a digit in a mixed-radix number.
func (mp *MultiProduct[T]) remaining(totals []intish.SizeHint) intish.SizeHint {
	if !mp.started {
		out := intish.Exact(1)
		for _, total := range totals {
			out = out.Mul(total)
		}
		return out
	}

	out := intish.Exact(0)
	for i, total := range totals {
		out = out.Mul(total).Add(total.SubScalar(mp.position(i)))
	}
	return out
}
