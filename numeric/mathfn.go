// SPDX-License-Identifier: MIT

package numeric

import "math"

// Precision-generic wrappers over the standard math package.
// Each one widens to float64, calls math, and narrows back to T explicitly.

func Abs[T Float](x T) T      { return T(math.Abs(float64(x))) }
func Sqrt[T Float](x T) T     { return T(math.Sqrt(float64(x))) }
func Exp[T Float](x T) T      { return T(math.Exp(float64(x))) }
func Expm1[T Float](x T) T    { return T(math.Expm1(float64(x))) }
func Log[T Float](x T) T      { return T(math.Log(float64(x))) }
func Log1p[T Float](x T) T    { return T(math.Log1p(float64(x))) }
func Pow[T Float](x, y T) T   { return T(math.Pow(float64(x), float64(y))) }
func Floor[T Float](x T) T    { return T(math.Floor(float64(x))) }
func Ceil[T Float](x T) T     { return T(math.Ceil(float64(x))) }
func Round[T Float](x T) T    { return T(math.Round(float64(x))) }
func Tan[T Float](x T) T      { return T(math.Tan(float64(x))) }
func Atan[T Float](x T) T     { return T(math.Atan(float64(x))) }
func Erfc[T Float](x T) T     { return T(math.Erfc(float64(x))) }
func Erfcinv[T Float](x T) T  { return T(math.Erfcinv(float64(x))) }
func Min[T Float](a, b T) T   { return T(math.Min(float64(a), float64(b))) }
func Max[T Float](a, b T) T   { return T(math.Max(float64(a), float64(b))) }
func Hypot[T Float](a, b T) T { return T(math.Hypot(float64(a), float64(b))) }

// Lgamma returns ln|Γ(x)|. The sign is dropped: every caller in lvstats
// evaluates it on positive arguments.
func Lgamma[T Float](x T) T {
	v, _ := math.Lgamma(float64(x))
	return T(v)
}

// Nextafter returns the next representable T after x towards y.
func Nextafter[T Float](x, y T) T {
	if Is32[T]() {
		return T(math.Nextafter32(float32(x), float32(y)))
	}
	return T(math.Nextafter(float64(x), float64(y)))
}

// Log1mExp returns ln(1 - e^x) for x <= 0 without cancellation.
// It switches between log(-expm1(x)) and log1p(-exp(x)) at -ln 2.
func Log1mExp[T Float](x T) T {
	if x > 0 {
		return NaN[T]()
	}
	if x > -math.Ln2 {
		return Log(-Expm1(x))
	}
	return Log1p(-Exp(x))
}
