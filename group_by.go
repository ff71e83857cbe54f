package itertools

import "iter"

// GroupBy collects every item of the sequence under its key, whether
// or not items with the same key are adjacent. Groups are produced in
// the order their keys were first seen. The whole input is read before
// the first group is produced.
func GroupBy[K comparable, V any](seq iter.Seq[V], key func(V) K) iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		og := grouping(groups[K, V]{})
		flush(seq, og.with(key))
		for k, values := range og.iter() {
			if !yield(k, values) {
				return
			}
		}
	}
}

// IntoGroupMap collects the items of the sequence into a map of keys
// to every item with that key, in input order.
func IntoGroupMap[K comparable, V any](seq iter.Seq[V], key func(V) K) map[K][]V {
	mp := groups[K, V]{}
	for value := range seq {
		mp.add(key(value), value)
	}
	return mp
}
