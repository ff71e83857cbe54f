package itertools

import (
	"iter"
	"slices"
)

// tracked wraps a slice in a sequence that records how many items were
// pulled and whether the producer has been released.
type tracked[T any] struct {
	items    []T
	pulled   int
	released bool
}

func track[T any](items ...T) *tracked[T] { return &tracked[T]{items: items} }

func (tr *tracked[T]) seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() { tr.released = true }()
		for _, item := range tr.items {
			tr.pulled++
			if !yield(item) {
				return
			}
		}
	}
}

func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; yield(i); i++ {
			continue
		}
	}
}

func collect[T any](seq iter.Seq[T]) []T { return slices.AppendSeq([]T{}, seq) }

func take[T any](seq iter.Seq[T], n int) []T {
	out := []T{}
	if n <= 0 {
		return out
	}
	for item := range seq {
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}
