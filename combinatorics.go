package itertools

import (
	"iter"

	"github.com/tychoish/itertools/comb"
)

// generate defers building a generator until the sequence is ranged
// over, so that constructors which buffer input do not read anything
// early.
func generate[T any](build func() comb.Generator[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) { flush(comb.Seq(build()), yield) }
}

// Combinations produces every k-length selection of items from the
// sequence in lexicographic order of input position. Items are
// distinct by position, not value. Combinations panics if k is
// negative.
func Combinations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	comb.CheckLength("combination", k)
	return generate(func() comb.Generator[T] { return comb.NewCombinations(seq, k) })
}

// CombinationsWithReplacement produces every k-length multiset of
// items from the sequence, as non-decreasing input positions.
// CombinationsWithReplacement panics if k is negative.
func CombinationsWithReplacement[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	comb.CheckLength("combination", k)
	return generate(func() comb.Generator[T] { return comb.NewCombinationsWithReplacement(seq, k) })
}

// Permutations produces every k-length ordered arrangement of
// distinct input positions. Permutations panics if k is negative.
func Permutations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	comb.CheckLength("permutation", k)
	return generate(func() comb.Generator[T] { return comb.NewPermutations(seq, k) })
}

// Powerset produces every subset of the sequence, shortest first.
func Powerset[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return generate(func() comb.Generator[T] { return comb.NewPowerset(seq) })
}

// CartesianPower produces every pow-length list of items from the
// sequence, repetition allowed. CartesianPower panics if pow is
// negative.
func CartesianPower[T any](seq iter.Seq[T], pow int) iter.Seq[[]T] {
	comb.CheckLength("cartesian power", pow)
	return generate(func() comb.Generator[T] { return comb.NewCartesianPower(seq, pow) })
}

// MultiProduct produces the cartesian product of the sequences: one
// row per way of picking an item from each sequence, with the last
// sequence varying fastest.
func MultiProduct[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return generate(func() comb.Generator[T] { return comb.NewMultiProduct(seqs...) })
}

// CombinationPairs produces every pair of items at distinct positions,
// earlier position first.
func CombinationPairs[T any](seq iter.Seq[T]) iter.Seq2[T, T] { return pairs(Combinations(seq, 2)) }

// PermutationPairs produces every ordered pair of items at distinct
// positions.
func PermutationPairs[T any](seq iter.Seq[T]) iter.Seq2[T, T] { return pairs(Permutations(seq, 2)) }

func pairs[T any](rows iter.Seq[[]T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for row := range rows {
			if !yield(row[0], row[1]) {
				return
			}
		}
	}
}
