package itertools

import (
	"cmp"
	"container/heap"
	"iter"
	"slices"

	"github.com/tychoish/itertools/ers"
)

// MinMaxKind describes how many items a MinMax search saw.
type MinMaxKind int

const (
	// NoElements is the result of an empty sequence.
	NoElements MinMaxKind = iota
	// OneElement is the result of a sequence with exactly one item,
	// which is both the minimum and the maximum.
	OneElement
	// MinAndMax is the result of a sequence with two or more items.
	MinAndMax
)

// MinMaxResult is the outcome of MinMax and MinMaxFunc.
type MinMaxResult[T any] struct {
	Kind MinMaxKind
	Min  T
	Max  T
}

// Bounds returns the minimum and the maximum, and false if the
// sequence was empty.
func (r MinMaxResult[T]) Bounds() (T, T, bool) { return r.Min, r.Max, r.Kind != NoElements }

// MinMax finds the smallest and the largest item of the sequence in a
// single pass. Of several equal smallest items the first is returned,
// of several equal largest items the last.
func MinMax[T cmp.Ordered](seq iter.Seq[T]) MinMaxResult[T] { return MinMaxFunc(seq, cmp.Compare[T]) }

// MinMaxFunc is MinMax using a comparison function.
func MinMaxFunc[T any](seq iter.Seq[T], cmp func(T, T) int) MinMaxResult[T] {
	var out MinMaxResult[T]
	for item := range seq {
		switch out.Kind {
		case NoElements:
			out.Min, out.Max, out.Kind = item, item, OneElement
			continue
		case OneElement:
			out.Kind = MinAndMax
		}

		if cmp(item, out.Min) < 0 {
			out.Min = item
		}
		if cmp(item, out.Max) >= 0 {
			out.Max = item
		}
	}
	return out
}

// boundedHeap is a max-heap according to cmp, so the root is the item
// that goes first when something smaller comes along.
type boundedHeap[T any] struct {
	items []T
	cmp   func(T, T) int
}

func (h *boundedHeap[T]) Len() int           { return len(h.items) }
func (h *boundedHeap[T]) Less(i, j int) bool { return h.cmp(h.items[i], h.items[j]) > 0 }
func (h *boundedHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *boundedHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *boundedHeap[T]) Pop() any {
	n := len(h.items)
	out := h.items[n-1]
	h.items = h.items[:n-1]
	return out
}

// KSmallest returns the k smallest items of the sequence in ascending
// order, holding no more than k items at a time. KSmallest panics if k
// is negative.
func KSmallest[T cmp.Ordered](seq iter.Seq[T], k int) []T { return KSmallestFunc(seq, k, cmp.Compare[T]) }

// KLargest returns the k largest items of the sequence in descending
// order. KLargest panics if k is negative.
func KLargest[T cmp.Ordered](seq iter.Seq[T], k int) []T {
	return KSmallestFunc(seq, k, func(a, b T) int { return cmp.Compare(b, a) })
}

// KSmallestFunc is KSmallest using a comparison function. Among equal
// items the ones seen first are kept.
func KSmallestFunc[T any](seq iter.Seq[T], k int, cmp func(T, T) int) []T {
	ers.Invariant(k >= 0, ers.ErrInvalidArgument, "cannot select %d items", k)

	h := &boundedHeap[T]{items: make([]T, 0, k), cmp: cmp}
	if k == 0 {
		return h.items
	}
	for item := range seq {
		switch {
		case h.Len() < k:
			heap.Push(h, item)
		case cmp(item, h.items[0]) < 0:
			h.items[0] = item
			heap.Fix(h, 0)
		}
	}

	slices.SortStableFunc(h.items, cmp)
	return h.items
}
