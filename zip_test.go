package itertools

import (
	"cmp"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/itertools/ers"
)

func TestZipLongest(t *testing.T) {
	t.Run("LeftLonger", func(t *testing.T) {
		out := collect(ZipLongest(slices.Values([]int{1, 2, 3}), slices.Values([]string{"a"})))
		require.Len(t, out, 3)
		assert.True(t, out[0].Both())
		assert.Equal(t, EitherOrBoth[int, string]{Left: 1, Right: "a", HasLeft: true, HasRight: true}, out[0])
		assert.Equal(t, EitherOrBoth[int, string]{Left: 2, HasLeft: true}, out[1])
		assert.Equal(t, "-", out[2].RightOr("-"))
		assert.Equal(t, 3, out[2].LeftOr(0))
	})
	t.Run("RightLonger", func(t *testing.T) {
		out := collect(ZipLongest(slices.Values([]int{}), slices.Values([]string{"a", "b"})))
		require.Len(t, out, 2)
		for _, step := range out {
			assert.False(t, step.HasLeft)
			assert.True(t, step.HasRight)
			assert.Equal(t, -1, step.LeftOr(-1))
		}
		left, right := out[1].Split()
		assert.Zero(t, left)
		assert.Equal(t, "b", right)
	})
	t.Run("BothEmpty", func(t *testing.T) {
		assert.Empty(t, collect(ZipLongest(slices.Values([]int{}), slices.Values([]int{}))))
	})
	t.Run("Break", func(t *testing.T) {
		left, right := track(1, 2, 3), track(4, 5, 6)
		assert.Len(t, take(ZipLongest(left.seq(), right.seq()), 1), 1)
		assert.True(t, left.released)
		assert.True(t, right.released)
	})
}

func TestZipEq(t *testing.T) {
	t.Run("EqualLengths", func(t *testing.T) {
		keys, values := []string{}, []int{}
		for k, v := range ZipEq(slices.Values([]string{"a", "b"}), slices.Values([]int{1, 2})) {
			keys, values = append(keys, k), append(values, v)
		}
		assert.Equal(t, []string{"a", "b"}, keys)
		assert.Equal(t, []int{1, 2}, values)
	})
	t.Run("Mismatch", func(t *testing.T) {
		for _, tt := range []struct {
			name        string
			left, right []int
		}{
			{name: "LeftShort", left: []int{1}, right: []int{1, 2}},
			{name: "RightShort", left: []int{1, 2, 3}, right: []int{1, 2}},
			{name: "LeftEmpty", left: []int{}, right: []int{1}},
		} {
			t.Run(tt.name, func(t *testing.T) {
				count := 0
				err := ers.WithRecoverCall(func() {
					for range ZipEq(slices.Values(tt.left), slices.Values(tt.right)) {
						count++
					}
				})
				require.Error(t, err)
				assert.True(t, errors.Is(err, ers.ErrLengthMismatch))
				assert.Equal(t, min(len(tt.left), len(tt.right)), count)
			})
		}
	})
}

func TestMultizip(t *testing.T) {
	for _, tt := range []struct {
		name   string
		inputs [][]int
		want   [][]int
	}{
		{name: "NoInputs", inputs: nil, want: [][]int{}},
		{name: "Single", inputs: [][]int{{1, 2}}, want: [][]int{{1}, {2}}},
		{name: "SameLength", inputs: [][]int{{1, 2}, {3, 4}, {5, 6}}, want: [][]int{{1, 3, 5}, {2, 4, 6}}},
		{name: "ShortestWins", inputs: [][]int{{1, 2, 3}, {4}, {5, 6}}, want: [][]int{{1, 4, 5}}},
		{name: "EmptyInput", inputs: [][]int{{1, 2}, {}}, want: [][]int{}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			seqs := make([]iter.Seq[int], 0, len(tt.inputs))
			for _, in := range tt.inputs {
				seqs = append(seqs, slices.Values(in))
			}
			assert.Equal(t, tt.want, collect(Multizip(seqs...)))
		})
	}
	t.Run("RowsAreOwned", func(t *testing.T) {
		rows := collect(Multizip(slices.Values([]int{1, 2}), slices.Values([]int{3, 4})))
		rows[0][0] = 100
		assert.Equal(t, []int{2, 4}, rows[1])
	})
	t.Run("Break", func(t *testing.T) {
		inputs := []*tracked[int]{track(1, 2, 3), track(4, 5, 6), track(7, 8, 9)}
		rows := take(Multizip(inputs[0].seq(), inputs[1].seq(), inputs[2].seq()), 1)
		assert.Equal(t, [][]int{{1, 4, 7}}, rows)
		for _, in := range inputs {
			assert.Equal(t, 1, in.pulled)
			assert.True(t, in.released)
		}
	})
	t.Run("Unbounded", func(t *testing.T) {
		rows := collect(Multizip(naturals(), slices.Values([]int{10, 20})))
		assert.Equal(t, [][]int{{0, 10}, {1, 20}}, rows)
	})
}

func TestMergeJoinBy(t *testing.T) {
	left := func(v int) EitherOrBoth[int, string] { return EitherOrBoth[int, string]{Left: v, HasLeft: true} }
	right := func(v string) EitherOrBoth[int, string] { return EitherOrBoth[int, string]{Right: v, HasRight: true} }
	both := func(l int, r string) EitherOrBoth[int, string] {
		return EitherOrBoth[int, string]{Left: l, Right: r, HasLeft: true, HasRight: true}
	}
	byLength := func(n int, s string) int { return cmp.Compare(n, len(s)) }

	for _, tt := range []struct {
		name string
		lhs  []int
		rhs  []string
		want []EitherOrBoth[int, string]
	}{
		{name: "Empty", want: []EitherOrBoth[int, string]{}},
		{name: "LeftOnly", lhs: []int{1, 2}, want: []EitherOrBoth[int, string]{left(1), left(2)}},
		{name: "RightOnly", rhs: []string{"a"}, want: []EitherOrBoth[int, string]{right("a")}},
		{
			name: "Interleaved",
			lhs:  []int{1, 2, 4, 6},
			rhs:  []string{"aa", "bbb", "cccc", "ddddd"},
			want: []EitherOrBoth[int, string]{left(1), both(2, "aa"), right("bbb"), both(4, "cccc"), right("ddddd"), left(6)},
		},
		{
			name: "Duplicates",
			lhs:  []int{1, 1},
			rhs:  []string{"a", "b", "c"},
			want: []EitherOrBoth[int, string]{both(1, "a"), both(1, "b"), right("c")},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(MergeJoinBy(slices.Values(tt.lhs), slices.Values(tt.rhs), byLength))
			assert.Equal(t, tt.want, got)
		})
	}
	t.Run("Break", func(t *testing.T) {
		lhs, rhs := track(1, 2, 3), track("a", "b")
		out := take(MergeJoinBy(lhs.seq(), rhs.seq(), byLength), 1)
		assert.Equal(t, []EitherOrBoth[int, string]{both(1, "a")}, out)
		assert.True(t, lhs.released)
		assert.True(t, rhs.released)
	})
}
