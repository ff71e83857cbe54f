package itertools

import "iter"

// Interleave alternates between the items of two sequences, starting
// with the first. Once either sequence is exhausted the rest of the
// other follows.
func Interleave[T any](lhs, rhs iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		for flag := true; ; flag = !flag {
			next, other := lnext, rnext
			if !flag {
				next, other = rnext, lnext
			}

			item, ok := next()
			if !ok {
				if item, ok = other(); !ok {
					return
				}
			}
			if !yield(item) {
				return
			}
		}
	}
}

// InterleaveShortest alternates between the items of two sequences,
// starting with the first, and stops as soon as the sequence whose
// turn it is has nothing left.
func InterleaveShortest[T any](lhs, rhs iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		for phase := false; ; phase = !phase {
			item, ok := ifelse(phase, rnext, lnext)()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Intersperse places a copy of the separator between each pair of
// adjacent items.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for item := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(item) {
				return
			}
		}
	}
}
