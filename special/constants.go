// SPDX-License-Identifier: MIT

package special

// Fixed evaluation depths. Changing any of these changes results bit-for-bit,
// so they are part of the numeric contract and covered by the accuracy tests.
const (
	// GammaSeriesTerms is the number of terms summed in the P(a,x) series.
	// The series needs O(sqrt(a)) terms near x ≈ a; 1000 keeps shapes up to
	// ~3e4 below 1e-12 relative error.
	GammaSeriesTerms = 1000

	// GammaFractionDepth is the number of levels of the Legendre continued
	// fraction for Q(a,x), evaluated from the innermost level outwards.
	GammaFractionDepth = 200

	// BetaFractionDepth is the number of (even, odd) level pairs of the
	// incomplete beta continued fraction.
	BetaFractionDepth = 200

	// InverseIterations is the fixed number of bracketed Newton steps taken by
	// IncGammaInv, IncGammaUpperInv and IncBetaInv.
	InverseIterations = 32
)
