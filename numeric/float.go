// SPDX-License-Identifier: MIT

package numeric

import "math"

// Float is the set of IEEE-754 binary floating-point types every kernel is
// generic over.
type Float interface {
	~float32 | ~float64
}

// NaN returns a quiet NaN of precision T.
func NaN[T Float]() T { return T(math.NaN()) }

// Inf returns +Inf when sign >= 0 and -Inf otherwise, in precision T.
func Inf[T Float](sign int) T { return T(math.Inf(sign)) }

// IsNaN reports whether v is NaN.
func IsNaN[T Float](v T) bool { return v != v }

// IsInf reports whether v is an infinity with the given sign (sign == 0 matches both).
func IsInf[T Float](v T, sign int) bool { return math.IsInf(float64(v), sign) }

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T Float](v T) bool {
	return !IsNaN(v) && !IsInf(v, 0)
}

// AnyNaN reports whether any argument is NaN.
// Used by evaluators to implement the "NaN in, NaN out" rule in one line.
func AnyNaN[T Float](vs ...T) bool {
	for _, v := range vs {
		if v != v {
			return true
		}
	}
	return false
}

// IsInteger reports whether v is a finite whole number.
func IsInteger[T Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Clamp limits v into [lo, hi]. NaN passes through unchanged.
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
