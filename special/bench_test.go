// SPDX-License-Identifier: MIT

package special_test

import (
	"testing"

	"github.com/katalvlaran/lvstats/special"
)

var sink float64

func BenchmarkIncGammaSeries(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = special.IncGamma(10.0, 5)
	}
}

func BenchmarkIncGammaFraction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = special.IncGamma(10.0, 25)
	}
}

func BenchmarkIncBeta(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = special.IncBeta(2.5, 7.0, 0.3)
	}
}

func BenchmarkIncGammaInv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = special.IncGammaInv(3.0, 0.7)
	}
}

func BenchmarkIncBetaInv(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = special.IncBetaInv(2.5, 7.0, 0.3)
	}
}
