package itertools

import (
	"iter"
	"slices"
)

// ProcessResults passes the values of a sequence of value and error
// pairs to op as a plain sequence. The plain sequence ends at the
// first non-nil error, which ProcessResults returns along with the
// result of op.
func ProcessResults[T, R any](seq iter.Seq2[T, error], op func(iter.Seq[T]) R) (R, error) {
	var err error
	out := op(func(yield func(T) bool) {
		if err != nil {
			return
		}
		for value, verr := range seq {
			if verr != nil {
				err = verr
				return
			}
			if !yield(value) {
				return
			}
		}
	})
	return out, err
}

// TryCollect collects the values of a sequence of value and error
// pairs, stopping at the first error.
func TryCollect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	return ProcessResults(seq, func(values iter.Seq[T]) []T { return slices.AppendSeq([]T{}, values) })
}
