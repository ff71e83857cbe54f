package intish

import (
	"math"

	"golang.org/x/exp/constraints"
)

// CheckedAdd returns a+b and true, or false if the sum does not fit
// in T.
func CheckedAdd[T constraints.Integer](a, b T) (T, bool) {
	sum := a + b
	switch {
	case b > 0:
		return sum, sum > a
	case b < 0:
		return sum, sum < a
	default:
		return sum, true
	}
}

// CheckedSub returns a-b and true, or false if the difference does
// not fit in T.
func CheckedSub[T constraints.Integer](a, b T) (T, bool) {
	diff := a - b
	switch {
	case b > 0:
		return diff, diff < a
	case b < 0:
		return diff, diff > a
	default:
		return diff, true
	}
}

// CheckedMul returns a*b and true, or false if the product does not
// fit in T.
func CheckedMul[T constraints.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	return prod, prod/b == a && ((a < 0) == (b < 0)) == (prod > 0)
}

// SaturatingAdd adds two non-negative values, returning math.MaxInt
// rather than wrapping.
func SaturatingAdd(a, b int) int { return Saturate(CheckedAdd(a, b)) }

// SaturatingMul multiplies two non-negative values, returning
// math.MaxInt rather than wrapping.
func SaturatingMul(a, b int) int { return Saturate(CheckedMul(a, b)) }

// Saturate collapses the result of a checked operation: failed
// operations become math.MaxInt.
func Saturate(n int, ok bool) int {
	if !ok {
		return math.MaxInt
	}
	return n
}

// Binomial returns the number of k-element subsets of an n-element
// set. When k > n the result is zero. The second value is false if
// the result overflows an int. Negative arguments produce zero.
func Binomial(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}

	k = Min(k, n-k)
	count := 1
	for i := 1; i <= k; i++ {
		// c*n/i, computed without forming c*n
		whole, ok := CheckedMul(count/i, n)
		if !ok {
			return math.MaxInt, false
		}
		part, ok := CheckedMul(count%i, n)
		if !ok {
			return math.MaxInt, false
		}
		if count, ok = CheckedAdd(whole, part/i); !ok {
			return math.MaxInt, false
		}
		n--
	}
	return count, true
}

// FallingFactorial returns n!/(n-k)!, the number of k-length
// arrangements of n distinct items. When k > n the result is zero.
func FallingFactorial(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}

	total := 1
	for i := n - k + 1; i <= n; i++ {
		var ok bool
		if total, ok = CheckedMul(total, i); !ok {
			return math.MaxInt, false
		}
	}
	return total, true
}

// Pow returns base raised to exp. Pow(0, 0) is one. Negative
// exponents are not supported and produce zero.
func Pow(base, exp int) (int, bool) {
	if exp < 0 {
		return 0, true
	}

	result := 1
	for ok := true; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			if result, ok = CheckedMul(result, base); !ok {
				return math.MaxInt, false
			}
		}
		if exp > 1 {
			if base, ok = CheckedMul(base, base); !ok {
				return math.MaxInt, false
			}
		}
	}
	return result, true
}
