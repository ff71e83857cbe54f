package itertools

import (
	"cmp"
	"container/heap"
	"iter"

	"github.com/tychoish/itertools/intish"
)

// headTail is one input of a k-way merge: the item that was pulled
// ahead from the input, and the pull function for the rest of it.
type headTail[T any] struct {
	head  T
	next  func() (T, bool)
	stop  func()
	index int
}

type mergeHeap[T any] struct {
	entries []*headTail[T]
	cmp     func(T, T) int
}

func (h *mergeHeap[T]) Len() int           { return len(h.entries) }
func (h *mergeHeap[T]) Swap(i, j int)      { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
func (h *mergeHeap[T]) Push(x any)         { h.entries = append(h.entries, x.(*headTail[T])) }
func (h *mergeHeap[T]) Peek() *headTail[T] { return h.entries[0] }

func (h *mergeHeap[T]) Less(i, j int) bool {
	if c := h.cmp(h.entries[i].head, h.entries[j].head); c != 0 {
		return c < 0
	}
	return h.entries[i].index < h.entries[j].index
}

func (h *mergeHeap[T]) Pop() any {
	n := len(h.entries)
	out := h.entries[n-1]
	h.entries[n-1] = nil
	h.entries = h.entries[:n-1]
	return out
}

// KMergeIter merges any number of sorted inputs into a single sorted
// output, using a binary heap keyed on the next item of each input.
// Each step costs O(log k) comparisons for k inputs.
//
// When items from different inputs compare equal, the item from the
// input that was passed first is produced first.
type KMergeIter[T any] struct {
	heap       *mergeHeap[T]
	inputs     []iter.Seq[T]
	prefetched bool
	value      T
	done       bool
}

// NewKMerge returns a merge over the inputs ordered by the comparison
// function. The inputs are not read until the first call to Next.
func NewKMerge[T any](cmp func(T, T) int, seqs ...iter.Seq[T]) *KMergeIter[T] {
	return &KMergeIter[T]{
		heap:   &mergeHeap[T]{cmp: cmp, entries: make([]*headTail[T], 0, len(seqs))},
		inputs: seqs,
	}
}

// prefetch pulls the first item of every input and pushes the inputs
// that are not empty onto the heap.
func (km *KMergeIter[T]) prefetch() {
	if km.prefetched {
		return
	}
	km.prefetched = true

	for idx, seq := range km.inputs {
		next, stop := iter.Pull(seq)
		if head, ok := next(); ok {
			km.heap.entries = append(km.heap.entries, &headTail[T]{head: head, next: next, stop: stop, index: idx})
			continue
		}
		stop()
	}
	heap.Init(km.heap)
	km.inputs = nil
}

// Next advances to the smallest remaining item, returning false when
// every input is exhausted.
func (km *KMergeIter[T]) Next() bool {
	if km.done {
		return false
	}
	km.prefetch()

	if km.heap.Len() == 0 {
		km.done = true
		return false
	}

	top := km.heap.Peek()
	km.value = top.head
	if head, ok := top.next(); ok {
		top.head = head
		heap.Fix(km.heap, 0)
	} else {
		top.stop()
		heap.Pop(km.heap)
	}
	return true
}

// Value returns the current item.
func (km *KMergeIter[T]) Value() T { return km.value }

// SizeHint reports bounds on the number of items left: at least one
// for every input that still has an item pulled ahead.
func (km *KMergeIter[T]) SizeHint() intish.SizeHint {
	if km.done {
		return intish.Exact(0)
	}
	return intish.Unbounded(km.heap.Len())
}

// Close releases every input that has not been exhausted.
func (km *KMergeIter[T]) Close() error {
	for _, entry := range km.heap.entries {
		entry.stop()
	}
	km.heap.entries = nil
	km.inputs = nil
	km.done = true
	return nil
}

// Seq returns a sequence of the remaining merged items. The merge is
// closed when the sequence ends.
func (km *KMergeIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer km.Close()
		for km.Next() && yield(km.value) {
			continue
		}
	}
}

// KMerge merges sorted sequences into a single sorted sequence.
func KMerge[T cmp.Ordered](seqs ...iter.Seq[T]) iter.Seq[T] { return KMergeFunc(cmp.Compare[T], seqs...) }

// KMergeFunc merges sequences that are sorted according to the
// comparison function. Ties are resolved in favor of earlier inputs.
func KMergeFunc[T any](cmp func(T, T) int, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) { flush(NewKMerge(cmp, seqs...).Seq(), yield) }
}

// Merge merges two sorted sequences. Equal items are taken from the
// first sequence before the second.
func Merge[T cmp.Ordered](lhs, rhs iter.Seq[T]) iter.Seq[T] { return MergeFunc(lhs, rhs, cmp.Compare[T]) }

// MergeFunc merges two sequences sorted according to the comparison
// function.
func MergeFunc[T any](lhs, rhs iter.Seq[T], cmp func(T, T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		lnext, lstop := iter.Pull(lhs)
		defer lstop()
		rnext, rstop := iter.Pull(rhs)
		defer rstop()

		lv, lok := lnext()
		rv, rok := rnext()
		for lok && rok {
			if cmp(lv, rv) <= 0 {
				if !yield(lv) {
					return
				}
				lv, lok = lnext()
				continue
			}
			if !yield(rv) {
				return
			}
			rv, rok = rnext()
		}

		switch {
		case lok:
			_ = yield(lv) && flush(unpull(lnext, lstop), yield)
		case rok:
			_ = yield(rv) && flush(unpull(rnext, rstop), yield)
		}
	}
}
