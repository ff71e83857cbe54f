package itertools

import (
	"iter"

	"github.com/tychoish/itertools/ers"
)

// EitherOrBoth holds one step of ZipLongest: an item from the left
// sequence, the right sequence, or both.
type EitherOrBoth[A, B any] struct {
	Left     A
	Right    B
	HasLeft  bool
	HasRight bool
}

// Both reports whether both sequences produced an item.
func (e EitherOrBoth[A, B]) Both() bool { return e.HasLeft && e.HasRight }

// LeftOr returns the left item, or the default when there is none.
func (e EitherOrBoth[A, B]) LeftOr(def A) A { return ifelse(e.HasLeft, e.Left, def) }

// RightOr returns the right item, or the default when there is none.
func (e EitherOrBoth[A, B]) RightOr(def B) B { return ifelse(e.HasRight, e.Right, def) }

// Split returns both items; a missing item is the zero value.
func (e EitherOrBoth[A, B]) Split() (A, B) { return e.Left, e.Right }

// ZipLongest pairs up the items of two sequences, continuing until
// both are exhausted.
func ZipLongest[A, B any](lhs iter.Seq[A], rhs iter.Seq[B]) iter.Seq[EitherOrBoth[A, B]] {
	return func(yield func(EitherOrBoth[A, B]) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		for {
			var step EitherOrBoth[A, B]
			step.Left, step.HasLeft = lnext()
			step.Right, step.HasRight = rnext()
			if !step.HasLeft && !step.HasRight || !yield(step) {
				return
			}
		}
	}
}

// ZipEq pairs up the items of two sequences that must be the same
// length. It panics with ErrLengthMismatch if one sequence ends before
// the other.
func ZipEq[A, B any](lhs iter.Seq[A], rhs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		for idx := 0; ; idx++ {
			lv, lok := lnext()
			rv, rok := rnext()
			switch {
			case lok && rok:
				if !yield(lv, rv) {
					return
				}
			case lok != rok:
				panic(ers.NewInvariantViolation(ers.ErrLengthMismatch, "zipped sequences differ in length at position %d", idx))
			default:
				return
			}
		}
	}
}

// Multizip steps through any number of sequences of the same type
// together, yielding one newly allocated row per step holding an item
// from each. It stops as soon as any sequence is exhausted. With no
// sequences it yields nothing.
func Multizip[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for idx, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[idx] = next
		}

		for {
			row := make([]T, len(nexts))
			for idx, next := range nexts {
				var ok bool
				if row[idx], ok = next(); !ok {
					return
				}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// MergeJoinBy walks two sequences that are ordered with respect to
// cmp. Items that compare equal are paired up; an item with no equal
// counterpart on the other side is yielded on its own, left when cmp
// is negative and right when it is positive. Once one sequence ends
// the rest of the other is yielded one-sided.
func MergeJoinBy[A, B any](lhs iter.Seq[A], rhs iter.Seq[B], cmp func(A, B) int) iter.Seq[EitherOrBoth[A, B]] {
	return func(yield func(EitherOrBoth[A, B]) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		lv, lok := lnext()
		rv, rok := rnext()
		for lok || rok {
			var step EitherOrBoth[A, B]
			switch {
			case !rok:
				step.Left, step.HasLeft = lv, true
			case !lok:
				step.Right, step.HasRight = rv, true
			default:
				switch c := cmp(lv, rv); {
				case c < 0:
					step.Left, step.HasLeft = lv, true
				case c > 0:
					step.Right, step.HasRight = rv, true
				default:
					step = EitherOrBoth[A, B]{Left: lv, Right: rv, HasLeft: true, HasRight: true}
				}
			}
			if !yield(step) {
				return
			}
			if step.HasLeft {
				lv, lok = lnext()
			}
			if step.HasRight {
				rv, rok = rnext()
			}
		}
	}
}
