// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/dist"
)

var probGrid = []float64{1e-8, 1e-4, 0.01, 0.05, 0.1, 0.25, 0.4, 0.5, 0.6, 0.75, 0.9, 0.95, 0.99, 1 - 1e-4, 1 - 1e-8}

func TestQuantileRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tc := range continuousCatalog() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, p := range probGrid {
				x := tc.d.Quantile(p)
				require.False(t, math.IsNaN(x), "p=%g", p)
				assert.InDelta(t, p, tc.d.CDF(x, false), 1e-5, "p=%g x=%g", p, x)
			}
		})
	}
}

// Discrete quantiles are the smallest k with CDF(k) >= p.
func TestDiscreteQuantileIsSmallest(t *testing.T) {
	t.Parallel()

	for _, tc := range validCatalog() {
		switch tc.name {
		case "Bernoulli", "Binomial", "Poisson":
		default:
			continue
		}
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, p := range probGrid {
				k := tc.d.Quantile(p)
				require.Equal(t, math.Floor(k), k, "p=%g", p)
				assert.GreaterOrEqual(t, tc.d.CDF(k, false), p, "p=%g k=%g", p, k)
				if lo, _ := tc.d.Support(); k > lo {
					assert.Less(t, tc.d.CDF(k-1, false), p, "p=%g k=%g", p, k)
				}
			}
		})
	}
}

func TestMonotone(t *testing.T) {
	t.Parallel()

	for _, tc := range validCatalog() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lo, hi := tc.d.Support()
			a := math.Max(lo, tc.d.Quantile(1e-6))
			b := math.Min(hi, tc.d.Quantile(1-1e-6))
			prev := -1.0
			for i := 0; i <= 400; i++ {
				x := a + (b-a)*float64(i)/400
				c := tc.d.CDF(x, false)
				require.GreaterOrEqual(t, c, prev, "cdf x=%g", x)
				prev = c
			}
			prevQ := math.Inf(-1)
			for i := 1; i < 400; i++ {
				q := tc.d.Quantile(float64(i) / 400)
				require.GreaterOrEqual(t, q, prevQ, "quantile p=%g", float64(i)/400)
				prevQ = q
			}
		})
	}
}

func TestLogIdentity(t *testing.T) {
	t.Parallel()

	for _, tc := range validCatalog() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, x := range probeGrid(tc.d) {
				d := tc.d.Density(x, false)
				if d > 0 && !math.IsInf(d, 0) {
					ld := tc.d.Density(x, true)
					assert.InDelta(t, math.Log(d), ld, 1e-12*math.Max(1, math.Abs(ld)), "density x=%g", x)
				}
				c := tc.d.CDF(x, false)
				if c > 0 {
					lc := tc.d.CDF(x, true)
					assert.InDelta(t, math.Log(c), lc, 1e-10*math.Max(1, math.Abs(lc)), "cdf x=%g", x)
				}
			}
		})
	}
}

func TestFloat32MatchesFloat64(t *testing.T) {
	t.Parallel()

	type pair struct {
		name string
		d32  dist.Distribution[float32]
		d64  dist.Distribution[float64]
	}
	pairs := []pair{
		{"Gamma", dist.Gamma[float32]{Shape: 2.5, Scale: 1.5}, dist.Gamma[float64]{Shape: 2.5, Scale: 1.5}},
		{"Beta", dist.Beta[float32]{Alpha: 2, Beta: 5}, dist.Beta[float64]{Alpha: 2, Beta: 5}},
		{"StudentsT", dist.StudentsT[float32]{DOF: 7}, dist.StudentsT[float64]{DOF: 7}},
		{"Normal", dist.Normal[float32]{Mu: 1, Sigma: 2}, dist.Normal[float64]{Mu: 1, Sigma: 2}},
		{"Poisson", dist.Poisson[float32]{Rate: 3}, dist.Poisson[float64]{Rate: 3}},
	}
	for _, pr := range pairs {
		pr := pr
		t.Run(pr.name, func(t *testing.T) {
			t.Parallel()
			for _, p := range []float64{0.05, 0.3, 0.5, 0.7, 0.95} {
				x := pr.d64.Quantile(p)
				x32 := float32(x)
				assert.InDelta(t, pr.d64.CDF(float64(x32), false), float64(pr.d32.CDF(x32, false)), 1e-4, "cdf p=%g", p)
				assert.InDelta(t, x, float64(pr.d32.Quantile(float32(p))), 1e-3*math.Max(1, math.Abs(x)), "quantile p=%g", p)
			}
		})
	}
}

func TestRandWithinSupport(t *testing.T) {
	t.Parallel()

	for _, tc := range validCatalog() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lo, hi := tc.d.Support()
			for i := 0; i < 200; i++ {
				v := tc.d.Rand(nil)
				require.False(t, math.IsNaN(v))
				require.GreaterOrEqual(t, v, lo)
				require.LessOrEqual(t, v, hi)
			}
		})
	}
}
