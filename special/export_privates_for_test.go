// SPDX-License-Identifier: MIT

package special

// Test-only bridges to the regime thresholds. Keep in a non-_test file so the
// external special_test package can reach them without widening the API.

// GammaSeriesRegime_TestOnly reports whether (a, x) is evaluated by the series.
func GammaSeriesRegime_TestOnly(a, x float64) bool { return x < a+1 }

// BetaDirectRegime_TestOnly reports whether (a, b, x) is evaluated directly
// (true) or through the reflection (false).
func BetaDirectRegime_TestOnly(a, b, x float64) bool { return betaDirect(a, b, x) }
