package itertools

import (
	"iter"
	"math"

	"github.com/tychoish/itertools/ers"
)

// teeBuffer is the state shared by the readers of a Tee: one pull
// cursor over the input and the items that some, but not all, readers
// have seen.
type teeBuffer[T any] struct {
	next func() (T, bool)
	stop func()
	done bool

	backlog []T
	// absolute input position of backlog[0]
	offset int
	// absolute input position of each reader; finished readers sit at
	// math.MaxInt so they never hold on to the backlog
	positions []int
	active    int
}

func (tb *teeBuffer[T]) read(reader int) (T, bool) {
	pos := tb.positions[reader]
	if idx := pos - tb.offset; idx < len(tb.backlog) {
		item := tb.backlog[idx]
		tb.positions[reader]++
		tb.trim()
		return item, true
	}
	if tb.done {
		return zero[T](), false
	}

	item, ok := tb.next()
	if !ok {
		tb.done = true
		tb.stop()
		return item, false
	}
	tb.backlog = append(tb.backlog, item)
	tb.positions[reader]++
	tb.trim()
	return item, true
}

// trim drops the items that every reader has already seen.
func (tb *teeBuffer[T]) trim() {
	lowest := math.MaxInt
	for _, pos := range tb.positions {
		lowest = min(lowest, pos)
	}
	if lowest == math.MaxInt {
		lowest = tb.offset + len(tb.backlog)
	}
	if drop := lowest - tb.offset; drop > 0 {
		clear(tb.backlog[:drop])
		tb.backlog = tb.backlog[drop:]
		tb.offset = lowest
	}
}

func (tb *teeBuffer[T]) finish(reader int) {
	if tb.positions[reader] == math.MaxInt {
		return
	}
	tb.positions[reader] = math.MaxInt
	tb.trim()
	if tb.active--; tb.active == 0 {
		tb.done = true
		tb.stop()
	}
}

// Tee returns n sequences that each produce every item of the input.
// The input is read once; items are held in a shared buffer until the
// slowest reader has seen them, so readers that run far ahead of the
// others cost memory.
//
// Each returned sequence may be iterated once. A reader that stops
// early gives up the rest of its items. Tee panics if n is negative.
func Tee[T any](seq iter.Seq[T], n int) []iter.Seq[T] {
	ers.Invariant(n >= 0, ers.ErrInvalidArgument, "tee count must not be negative, not %d", n)

	next, stop := iter.Pull(seq)
	tb := &teeBuffer[T]{next: next, stop: stop, positions: make([]int, n), active: n}
	whencall(n == 0, stop)

	out := make([]iter.Seq[T], n)
	for reader := range out {
		out[reader] = func(yield func(T) bool) {
			defer tb.finish(reader)
			if tb.positions[reader] == math.MaxInt {
				return
			}
			for item, ok := tb.read(reader); ok && yield(item); item, ok = tb.read(reader) {
				continue
			}
		}
	}
	return out
}
