package itertools

import (
	"iter"

	"github.com/tychoish/itertools/ers"
)

// Step produces the first item of the sequence and then every nth
// item after it. Step panics if n is less than one.
func Step[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	ers.Invariant(n > 0, ers.ErrInvalidArgument, "step must be positive, not %d", n)

	return func(yield func(T) bool) {
		idx := 0
		for item := range seq {
			if idx%n == 0 && !yield(item) {
				return
			}
			idx++
		}
	}
}

// PadUsing produces the items of the sequence and then, if there were
// fewer than size of them, the result of fill for each missing
// position.
func PadUsing[T any](seq iter.Seq[T], size int, fill func(int) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		pos := 0
		for item := range seq {
			if !yield(item) {
				return
			}
			pos++
		}
		for ; pos < size; pos++ {
			if !yield(fill(pos)) {
				return
			}
		}
	}
}

// Positions produces the index of every item that satisfies the
// predicate.
func Positions[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		idx := 0
		for item := range seq {
			if pred(item) && !yield(idx) {
				return
			}
			idx++
		}
	}
}

// Windows produces every run of size adjacent items, overlapping, in
// a newly allocated slice. A sequence shorter than size produces
// nothing. Windows panics if size is less than one.
func Windows[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	ers.Invariant(size > 0, ers.ErrInvalidArgument, "window size must be positive, not %d", size)

	return func(yield func([]T) bool) {
		window := make([]T, 0, size)
		for item := range seq {
			if len(window) == size {
				copy(window, window[1:])
				window = window[:size-1]
			}
			window = append(window, item)
			if len(window) == size && !yield(append(make([]T, 0, size), window...)) {
				return
			}
		}
	}
}
