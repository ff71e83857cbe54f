package itertools

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	value int
	err   error
}

func results(items ...result) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for _, item := range items {
			if !yield(item.value, item.err) {
				return
			}
		}
	}
}

func sum(seq iter.Seq[int]) (total int) {
	for value := range seq {
		total += value
	}
	return total
}

func TestProcessResults(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("AllValues", func(t *testing.T) {
		total, err := ProcessResults(results(result{value: 1}, result{value: 2}, result{value: 3}), sum)
		require.NoError(t, err)
		assert.Equal(t, 6, total)
	})
	t.Run("StopsAtFirstError", func(t *testing.T) {
		seen := 0
		total, err := ProcessResults(
			results(result{value: 1}, result{value: 2}, result{err: errBoom}, result{value: 100}, result{err: errors.New("later")}),
			func(seq iter.Seq[int]) int { seen++; return sum(seq) },
		)
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 3, total)
		assert.Equal(t, 1, seen)
	})
	t.Run("ErrorFirst", func(t *testing.T) {
		total, err := ProcessResults(results(result{err: errBoom}, result{value: 5}), sum)
		assert.ErrorIs(t, err, errBoom)
		assert.Zero(t, total)
	})
	t.Run("OperationStopsEarly", func(t *testing.T) {
		first, err := ProcessResults(results(result{value: 4}, result{err: errBoom}), func(seq iter.Seq[int]) int {
			for value := range seq {
				return value
			}
			return -1
		})
		require.NoError(t, err)
		assert.Equal(t, 4, first)
	})
	t.Run("IteratesOnceAfterError", func(t *testing.T) {
		_, err := ProcessResults(results(result{err: errBoom}, result{value: 5}), func(seq iter.Seq[int]) int {
			return sum(seq) + sum(seq)
		})
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestTryCollect(t *testing.T) {
	values, err := TryCollect(results(result{value: 1}, result{value: 2}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values)

	values, err = TryCollect(results(result{value: 1}, result{err: errors.New("stop")}, result{value: 2}))
	assert.Error(t, err)
	assert.Equal(t, []int{1}, values)
}
