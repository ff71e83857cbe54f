package comb

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drain[T any](gen Generator[T]) [][]T {
	out := [][]T{}
	for gen.Next() {
		out = append(out, gen.Value())
	}
	return out
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// counted wraps a slice in a sequence that records how many items
// have been pulled from it.
func counted[T any](items []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			*pulled++
			if !yield(item) {
				return
			}
		}
	}
}

// naturals is an unbounded sequence of 0, 1, 2, ...
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; yield(i); i++ {
			continue
		}
	}
}

func assertRows[T any](t *testing.T, want, got [][]T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func isLexicographic(rows [][]int) bool {
	return slices.IsSortedFunc(rows, slices.Compare[[]int])
}
