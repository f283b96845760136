// SPDX-License-Identifier: MIT

package special

import "github.com/katalvlaran/lvstats/numeric"

// LogGamma returns ln Γ(x) for x > 0 (ln|Γ(x)| elsewhere).
func LogGamma[T numeric.Float](x T) T {
	return numeric.Lgamma(x)
}

// LogBeta returns ln B(a,b) = ln Γ(a) + ln Γ(b) - ln Γ(a+b).
// a <= 0 or b <= 0 → NaN.
func LogBeta[T numeric.Float](a, b T) T {
	if numeric.AnyNaN(a, b) || a <= 0 || b <= 0 {
		return numeric.NaN[T]()
	}
	return numeric.Lgamma(a) + numeric.Lgamma(b) - numeric.Lgamma(a+b)
}

// validShape reports whether a shape parameter is positive and finite.
func validShape[T numeric.Float](a T) bool {
	return a > 0 && !numeric.IsInf(a, 1)
}

// raiseZero replaces a near-zero denominator with Tiny so backward
// recurrences never divide by zero.
func raiseZero[T numeric.Float](z T) T {
	if tiny := numeric.Tiny[T](); numeric.Abs(z) < tiny {
		return tiny
	}
	return z
}
