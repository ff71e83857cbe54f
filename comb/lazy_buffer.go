package comb

import (
	"iter"
	"math"

	"github.com/tychoish/itertools/intish"
)

// tape is the append-only record of everything pulled from an
// upstream sequence. Buffers cloned from one another share a tape, so
// an element is only ever pulled once no matter how many clones read
// it. refs counts the open buffers reading the tape; the upstream is
// stopped when the last of them closes.
type tape[T any] struct {
	items []T
	next  func() (T, bool)
	stop  func()
	refs  int
	done  bool
}

func newTape[T any](seq iter.Seq[T]) *tape[T] {
	next, stop := iter.Pull(seq)
	return &tape[T]{next: next, stop: stop, refs: 1}
}

func (tp *tape[T]) detach() {
	if tp.refs--; tp.refs <= 0 {
		tp.release()
	}
}

func (tp *tape[T]) pull() bool {
	if tp.done {
		return false
	}
	item, ok := tp.next()
	if !ok {
		tp.release()
		return false
	}
	tp.items = append(tp.items, item)
	return true
}

func (tp *tape[T]) release() {
	tp.done = true
	if tp.stop != nil {
		tp.stop()
		tp.stop, tp.next = nil, nil
	}
}

// LazyBuffer is an incrementally filled cache over an upstream
// sequence that gives random access to everything seen so far. Items
// are only pulled from the upstream by GetNext (or Prefill/Drain),
// never speculatively.
//
// The contents of a buffer are append-only: once At(i) is valid it
// stays valid and always returns the same item.
//
// LazyBuffers are not safe for concurrent use.
type LazyBuffer[T any] struct {
	tape   *tape[T]
	size   int
	closed bool
}

// NewLazyBuffer creates a buffer over the sequence. The sequence is
// not started until the first item is requested.
func NewLazyBuffer[T any](seq iter.Seq[T]) *LazyBuffer[T] {
	return &LazyBuffer[T]{tape: newTape(seq)}
}

// Len returns the number of buffered items.
func (lb *LazyBuffer[T]) Len() int { return lb.size }

// At returns the buffered item at position i. At panics if i is not
// less than Len().
func (lb *LazyBuffer[T]) At(i int) T { return lb.tape.items[:lb.size][i] }

// GetNext buffers one more item, returning false if the upstream is
// exhausted.
func (lb *LazyBuffer[T]) GetNext() bool {
	if lb.closed {
		return false
	}
	if lb.size == len(lb.tape.items) && !lb.tape.pull() {
		return false
	}
	lb.size++
	return true
}

// Prefill buffers items until the buffer holds at least n items or
// the upstream is exhausted.
func (lb *LazyBuffer[T]) Prefill(n int) {
	for lb.size < n && lb.GetNext() {
		continue
	}
}

// Drain buffers every remaining upstream item and returns the final
// length of the buffer.
func (lb *LazyBuffer[T]) Drain() int {
	lb.Prefill(math.MaxInt)
	return lb.size
}

// Total buffers the rest of the upstream onto the shared tape and
// returns its full length. The buffer's own length is unchanged.
func (lb *LazyBuffer[T]) Total() int {
	scout := lb.Clone()
	defer scout.Close()
	return scout.Drain()
}

// Exhausted reports whether a further GetNext will return false.
func (lb *LazyBuffer[T]) Exhausted() bool {
	return lb.closed || (lb.tape.done && lb.size == len(lb.tape.items))
}

// TotalHint reports the bounds on the full length of the upstream
// sequence, counting what has already been buffered.
func (lb *LazyBuffer[T]) TotalHint() intish.SizeHint {
	if lb.tape.done {
		return intish.Exact(len(lb.tape.items))
	}
	return intish.Unbounded(len(lb.tape.items))
}

// Select appends the items at the given positions to dst, returning
// the extended slice.
func (lb *LazyBuffer[T]) Select(dst []T, indices []int) []T {
	for _, idx := range indices {
		dst = append(dst, lb.At(idx))
	}
	return dst
}

// Clone returns a buffer with the same contents that shares the
// upstream with this buffer. Clones advance independently, and each
// must be closed on its own.
func (lb *LazyBuffer[T]) Clone() *LazyBuffer[T] {
	lb.tape.refs++
	return &LazyBuffer[T]{tape: lb.tape, size: lb.size}
}

// Rewind resets the buffer to hold its first n items. Items past n
// remain recorded on the shared tape and are replayed, in order, by
// subsequent calls to GetNext.
func (lb *LazyBuffer[T]) Rewind(n int) { lb.size = intish.Max(intish.Min(n, lb.size), 0) }

// Close stops the buffer from growing; items it already holds remain
// readable. The shared upstream is released once every clone reading
// it has been closed. Close is idempotent.
func (lb *LazyBuffer[T]) Close() error {
	if !lb.closed {
		lb.closed = true
		lb.tape.detach()
	}
	return nil
}
