package intish

import "math"

// SizeHint is a best-effort description of how many values an
// iterator has left to produce: at least Lower, and when Bounded is
// true, at most Upper.
//
// Arithmetic on hints never wraps. Lower bounds saturate at
// math.MaxInt, and an upper bound that would overflow is dropped,
// leaving the hint unbounded.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exact returns a hint with matching lower and upper bounds.
func Exact(n int) SizeHint { return SizeHint{Lower: n, Upper: n, Bounded: true} }

// Unbounded returns a hint with the given lower bound and no upper
// bound.
func Unbounded(lower int) SizeHint { return SizeHint{Lower: lower} }

// Checked converts the result of a checked count into a hint: an
// exact hint on success and an unbounded, saturated hint on overflow.
func Checked(n int, ok bool) SizeHint {
	if !ok {
		return Unbounded(math.MaxInt)
	}
	return Exact(n)
}

// Exact returns the size when the lower and upper bound agree.
func (h SizeHint) Exact() (int, bool) { return h.Lower, h.Bounded && h.Lower == h.Upper }

// Add combines the hints of two sequences that are consumed one after
// the other.
func (h SizeHint) Add(o SizeHint) SizeHint {
	out := SizeHint{Lower: SaturatingAdd(h.Lower, o.Lower)}
	if h.Bounded && o.Bounded {
		out.Upper, out.Bounded = CheckedAdd(h.Upper, o.Upper)
	}
	return out.normalize()
}

// AddScalar adds a known number of values to both bounds.
func (h SizeHint) AddScalar(n int) SizeHint { return h.Add(Exact(n)) }

// SubScalar removes a known number of values from both bounds,
// saturating at zero.
func (h SizeHint) SubScalar(n int) SizeHint {
	h.Lower = Max(h.Lower-n, 0)
	if h.Bounded {
		h.Upper = Max(h.Upper-n, 0)
	}
	return h
}

// Mul returns the hint for the product of two independent sizes.
func (h SizeHint) Mul(o SizeHint) SizeHint {
	out := SizeHint{Lower: SaturatingMul(h.Lower, o.Lower)}
	switch {
	case h.Bounded && o.Bounded:
		out.Upper, out.Bounded = CheckedMul(h.Upper, o.Upper)
	case h.Bounded && h.Upper == 0, o.Bounded && o.Upper == 0:
		out.Upper, out.Bounded = 0, true
	}
	return out.normalize()
}

// Min returns the hint for a sequence that stops when either of two
// sequences stop.
func (h SizeHint) Min(o SizeHint) SizeHint {
	out := SizeHint{Lower: Min(h.Lower, o.Lower)}
	switch {
	case h.Bounded && o.Bounded:
		out.Upper, out.Bounded = Min(h.Upper, o.Upper), true
	case h.Bounded:
		out.Upper, out.Bounded = h.Upper, true
	case o.Bounded:
		out.Upper, out.Bounded = o.Upper, true
	}
	return out
}

func (h SizeHint) normalize() SizeHint {
	if !h.Bounded {
		h.Upper = 0
	}
	return h
}
