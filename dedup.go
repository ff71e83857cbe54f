package itertools

import "iter"

// Dedup drops items equal to the item before them, so each run of
// equal items produces one item.
func Dedup[T comparable](seq iter.Seq[T]) iter.Seq[T] { return DedupFunc(seq, equal[T]) }

// DedupFunc drops items that the eq function reports as equal to the
// last item produced.
func DedupFunc[T any](seq iter.Seq[T], eq func(T, T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range dedupRuns(seq, eq) {
			if !yield(item) {
				return
			}
		}
	}
}

// DedupWithCount collapses each run of equal items into the length of
// the run and its first item.
func DedupWithCount[T comparable](seq iter.Seq[T]) iter.Seq2[int, T] { return dedupRuns(seq, equal[T]) }

func dedupRuns[T any](seq iter.Seq[T], eq func(T, T) bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var last T
		count := 0
		for item := range seq {
			if count > 0 && eq(last, item) {
				count++
				continue
			}
			if count > 0 && !yield(count, last) {
				return
			}
			last, count = item, 1
		}
		if count > 0 {
			yield(count, last)
		}
	}
}

// Unique drops every item that has already been produced. It keeps a
// copy of every distinct item.
func Unique[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		check := seen[T]()
		for item := range seq {
			if !check(item) && !yield(item) {
				return
			}
		}
	}
}

// UniqueBy drops every item whose key has already been produced.
func UniqueBy[K comparable, V any](seq iter.Seq[V], key func(V) K) iter.Seq[V] {
	return func(yield func(V) bool) {
		check := seen[K]()
		for item := range seq {
			if !check(key(item)) && !yield(item) {
				return
			}
		}
	}
}
