package itertools

import "iter"

func counterFrom(next int) func() int   { return func() int { next++; return next } }
func seen[T comparable]() func(T) bool  { s := set[T]{}; return s.add }
func equal[T comparable](lh, rh T) bool { return lh == rh }
func zero[T any]() (zero T)             { return zero }

func ifelse[T any](cond bool, then T, elsewise T) T {
	if cond {
		return then
	}
	return elsewise
}

func whencall(cond bool, then func()) {
	if cond {
		then()
	}
}

func flush[T any](seq iter.Seq[T], yield func(T) bool) bool {
	for value := range seq {
		if !yield(value) {
			return false
		}
	}
	return true
}

// unpull converts next and stop functions back into an iter.Seq.
// This is the inverse of iter.Pull.
func unpull[T any](next func() (T, bool), stop func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer stop()
		for value, ok := next(); ok && yield(value); value, ok = next() {
			continue
		}
	}
}

////////////////////////////////
//
// Types

type none struct{}

type set[T comparable] map[T]none

func (s set[T]) check(v T) bool         { _, ok := s[v]; return ok }
func (s set[T]) set(v T)                { s[v] = none{} }
func (s set[T]) add(v T) (existed bool) { existed = s.check(v); s.set(v); return existed }
func (s set[T]) pop(v T) (existed bool) { existed = s.check(v); delete(s, v); return existed }

type groups[K comparable, V any] map[K][]V

func (mp groups[K, V]) check(key K) bool   { _, ok := mp[key]; return ok }
func (mp groups[K, V]) add(key K, value V) { mp[key] = append(mp[key], value) }
func (mp groups[K, V]) pop(key K) []V      { out := mp[key]; delete(mp, key); return out }

// orderedGrouping collects values by key and remembers the order in
// which each key was first seen.
type orderedGrouping[K comparable, V any] struct {
	table groups[K, V]
	order []K
}

func grouping[K comparable, V any](mp groups[K, V]) *orderedGrouping[K, V] {
	return &orderedGrouping[K, V]{table: mp, order: []K{}}
}

func (og *orderedGrouping[K, V]) add(k K, v V) {
	whencall(!og.table.check(k), func() { og.order = append(og.order, k) })
	og.table.add(k, v)
}

func (og *orderedGrouping[K, V]) with(f func(V) K) func(V) bool {
	return func(v V) bool { og.add(f(v), v); return true }
}

func (og *orderedGrouping[K, V]) iter() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for _, key := range og.order {
			if !yield(key, og.table.pop(key)) {
				return
			}
		}
	}
}
