package itertools

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/tychoish/itertools/ers"
)

func TestCombinatorics(t *testing.T) {
	t.Run("Combinations", func(t *testing.T) {
		out := collect(Combinations(slices.Values([]int{1, 2, 3, 4}), 2))
		assert.Equal(t, [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}, out)
	})
	t.Run("CombinationsWithReplacement", func(t *testing.T) {
		out := collect(CombinationsWithReplacement(slices.Values([]string{"a", "b"}), 2))
		assert.Equal(t, [][]string{{"a", "a"}, {"a", "b"}, {"b", "b"}}, out)
	})
	t.Run("Permutations", func(t *testing.T) {
		out := collect(Permutations(slices.Values([]int{5, 6, 7}), 2))
		assert.Equal(t, [][]int{{5, 6}, {5, 7}, {6, 5}, {6, 7}, {7, 5}, {7, 6}}, out)
	})
	t.Run("Powerset", func(t *testing.T) {
		out := collect(Powerset(slices.Values([]int{1, 2, 3})))
		assert.Equal(t, [][]int{{}, {1}, {2}, {3}, {1, 2}, {1, 3}, {2, 3}, {1, 2, 3}}, out)
	})
	t.Run("CartesianPower", func(t *testing.T) {
		out := collect(CartesianPower(slices.Values([]int{0, 1}), 3))
		require.Len(t, out, 8)
		assert.Equal(t, []int{0, 1, 1}, out[3])
		assert.Equal(t, [][]int{{}}, collect(CartesianPower(slices.Values([]int{0, 1}), 0)))
	})
	t.Run("MultiProduct", func(t *testing.T) {
		out := collect(MultiProduct(slices.Values([]int{1, 2}), slices.Values([]int{3}), slices.Values([]int{4, 5})))
		assert.Equal(t, [][]int{{1, 3, 4}, {1, 3, 5}, {2, 3, 4}, {2, 3, 5}}, out)
		assert.Equal(t, [][]int{{}}, collect(MultiProduct[int]()))
	})
	t.Run("Pairs", func(t *testing.T) {
		var combos, perms [][2]string
		for a, b := range CombinationPairs(slices.Values([]string{"x", "y", "z"})) {
			combos = append(combos, [2]string{a, b})
		}
		for a, b := range PermutationPairs(slices.Values([]string{"x", "y"})) {
			perms = append(perms, [2]string{a, b})
		}
		assert.Equal(t, [][2]string{{"x", "y"}, {"x", "z"}, {"y", "z"}}, combos)
		assert.Equal(t, [][2]string{{"x", "y"}, {"y", "x"}}, perms)
	})
	t.Run("Counts", func(t *testing.T) {
		for n := 0; n <= 6; n++ {
			for k := 0; k <= n; k++ {
				input := slices.Values(make([]int, n))
				assert.Len(t, collect(Combinations(input, k)), combin.Binomial(n, k))
				assert.Len(t, collect(Permutations(input, k)), combin.NumPermutations(n, k))
			}
			assert.Len(t, collect(Powerset(slices.Values(make([]int, n)))), 1<<n)
		}
	})
	t.Run("Lazy", func(t *testing.T) {
		input := track(1, 2, 3)
		seq := Combinations(input.seq(), 2)
		assert.Zero(t, input.pulled)

		assert.Equal(t, [][]int{{1, 2}}, take(seq, 1))
		assert.Equal(t, 2, input.pulled)
		assert.True(t, input.released)
	})
	t.Run("Restartable", func(t *testing.T) {
		seq := Permutations(slices.Values([]int{1, 2}), 2)
		assert.Equal(t, collect(seq), collect(seq))
	})
	t.Run("NegativeLengths", func(t *testing.T) {
		constructors := map[string]func(iter.Seq[int]){
			"Combinations":                func(s iter.Seq[int]) { Combinations(s, -1) },
			"CombinationsWithReplacement": func(s iter.Seq[int]) { CombinationsWithReplacement(s, -1) },
			"Permutations":                func(s iter.Seq[int]) { Permutations(s, -1) },
			"CartesianPower":              func(s iter.Seq[int]) { CartesianPower(s, -1) },
		}
		for name, construct := range constructors {
			t.Run(name, func(t *testing.T) {
				err := ers.WithRecoverCall(func() { construct(slices.Values([]int{1})) })
				require.Error(t, err)
				assert.True(t, errors.Is(err, ers.ErrInvalidArgument))
			})
		}
	})
}
