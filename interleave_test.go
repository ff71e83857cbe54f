package itertools

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterleave(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs []int
		longest  []int
		shortest []int
	}{
		{name: "SameLength", lhs: []int{1, 3, 5}, rhs: []int{2, 4, 6}, longest: []int{1, 2, 3, 4, 5, 6}, shortest: []int{1, 2, 3, 4, 5, 6}},
		{name: "LeftLonger", lhs: []int{1, 3, 5, 7, 9}, rhs: []int{2, 4}, longest: []int{1, 2, 3, 4, 5, 7, 9}, shortest: []int{1, 2, 3, 4, 5}},
		{name: "RightLonger", lhs: []int{1}, rhs: []int{2, 4, 6}, longest: []int{1, 2, 4, 6}, shortest: []int{1, 2}},
		{name: "LeftEmpty", lhs: []int{}, rhs: []int{2, 4}, longest: []int{2, 4}, shortest: []int{}},
		{name: "RightEmpty", lhs: []int{1}, rhs: []int{}, longest: []int{1}, shortest: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.longest, collect(Interleave(slices.Values(tt.lhs), slices.Values(tt.rhs))))
			assert.Equal(t, tt.shortest, collect(InterleaveShortest(slices.Values(tt.lhs), slices.Values(tt.rhs))))
		})
	}
	t.Run("Unbounded", func(t *testing.T) {
		assert.Equal(t, []int{0, -1, 1, -2, 2}, take(Interleave(naturals(), slices.Values([]int{-1, -2})), 5))
		assert.Equal(t, []int{0, 0, 1, 1}, take(InterleaveShortest(naturals(), naturals()), 4))
	})
}

func TestIntersperse(t *testing.T) {
	assert.Equal(t, []string{"a", ",", "b", ",", "c"}, collect(Intersperse(slices.Values([]string{"a", "b", "c"}), ",")))
	assert.Equal(t, []string{"a"}, collect(Intersperse(slices.Values([]string{"a"}), ",")))
	assert.Equal(t, []string{}, collect(Intersperse(slices.Values([]string{}), ",")))
	assert.Equal(t, []int{0, 9, 1, 9}, take(Intersperse(naturals(), 9), 4))
}
