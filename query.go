package itertools

import (
	"iter"

	"github.com/tychoish/itertools/ers"
)

// AllEqual reports whether every item of the sequence is equal to the
// first. An empty sequence is all equal.
func AllEqual[T comparable](seq iter.Seq[T]) bool {
	var first T
	started := false
	for item := range seq {
		if !started {
			first, started = item, true
			continue
		}
		if item != first {
			return false
		}
	}
	return true
}

// ExactlyOne returns the only item of the sequence. It returns
// ErrNoElements for an empty sequence and ErrTooManyElements if there
// is a second item; no more than two items are read.
func ExactlyOne[T any](seq iter.Seq[T]) (T, error) {
	item, ok, err := AtMostOne(seq)
	switch {
	case err != nil:
		return item, err
	case !ok:
		return item, ers.ErrNoElements
	default:
		return item, nil
	}
}

// AtMostOne returns the only item of the sequence and true, or false
// if the sequence is empty. It returns ErrTooManyElements, along with
// the first item, if there is a second item.
func AtMostOne[T any](seq iter.Seq[T]) (out T, ok bool, err error) {
	for item := range seq {
		if ok {
			err = ers.ErrTooManyElements
			break
		}
		out, ok = item, true
	}
	return out, ok && err == nil, err
}
