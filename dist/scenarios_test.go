// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/dist"
)

func TestPoissonMass(t *testing.T) {
	t.Parallel()

	ten := dist.Poisson[float64]{Rate: 10}
	assert.InDelta(t, 0.112599, ten.Density(8, false), 1e-6)
	assert.InDelta(t, math.Log(0.12511), ten.Density(9, true), 1e-5)
	assert.InDelta(t, 0.12511, ten.Density(10, false), 1e-5)
	assert.InDelta(t, 0.006737947, dist.Poisson[float64]{Rate: 5}.Density(0, false), 1e-9)
}

func TestPoissonRateClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(dist.Poisson[float64]{Rate: nan}.Density(3, false)))
	assert.True(t, math.IsNaN(dist.Poisson[float64]{Rate: -1}.Density(3, false)))
	assert.True(t, math.IsNaN(dist.Poisson[float64]{Rate: math.Inf(-1)}.Density(3, false)))

	zero := dist.Poisson[float64]{Rate: 0}
	assert.Equal(t, 1.0, zero.Density(0, false))
	assert.Equal(t, 0.0, zero.Density(1, false))
	assert.Equal(t, 1.0, zero.CDF(0, false))
	assert.Equal(t, 0.0, zero.Quantile(0.7))

	inf := dist.Poisson[float64]{Rate: math.Inf(1)}
	assert.Equal(t, 0.0, inf.Density(3, false))
	assert.Equal(t, 0.0, inf.CDF(3, false))
	assert.Equal(t, 0.0, inf.CDF(1e300, false))
	assert.Equal(t, math.Inf(1), inf.Quantile(0.2))
	assert.Equal(t, 0.0, inf.Quantile(0))
	assert.Equal(t, math.Inf(1), inf.Rand(nil))
}

func TestStudentsTQuantile(t *testing.T) {
	t.Parallel()

	eleven := dist.StudentsT[float64]{DOF: 11}
	tests := []struct {
		x, p float64
	}{
		{-1.01, 0.1670981},
		{-0.37, 0.3592038},
		{0, 0.5},
		{0.37, 0.6407962},
		{1.01, 0.8329019},
		{1.58, 0.9287938},
		{2.5, 0.9852468},
		{3.5, 0.9975148547},
		{-3.5, 0.002485145257},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.x, eleven.Quantile(tc.p), 1e-5, "qt(%v; 11)", tc.p)
		assert.InDelta(t, tc.p, eleven.CDF(tc.x, false), 1e-7, "pt(%v; 11)", tc.x)
	}
	assert.InDelta(t, -1.846695528, dist.StudentsT[float64]{DOF: 2.1}.Quantile(0.1), 1e-5)
}

func TestStudentsTRoundTrip(t *testing.T) {
	t.Parallel()

	for _, nu := range []float64{0.5, 1, 2.1, 5, 11, 100, 1e6} {
		d := dist.StudentsT[float64]{DOF: nu}
		for _, p := range []float64{1e-10, 1e-6, 0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 1 - 1e-6} {
			x := d.Quantile(p)
			require.False(t, math.IsNaN(x), "nu=%g p=%g", nu, p)
			assert.InDelta(t, p, d.CDF(x, false), 1e-12, "nu=%g p=%g", nu, p)
		}
	}
}

// TestStudentsTHeavyTail checks quantiles whose magnitude is far beyond any
// normal-based seed: the CDF at the result must match p relatively.
func TestStudentsTHeavyTail(t *testing.T) {
	t.Parallel()

	for _, nu := range []float64{0.1, 0.3, 1} {
		d := dist.StudentsT[float64]{DOF: nu}
		for _, p := range []float64{1e-12, 1e-8, 1e-4} {
			x := d.Quantile(p)
			require.Less(t, x, 0.0, "nu=%g p=%g", nu, p)
			assert.InEpsilon(t, p, d.CDF(x, false), 1e-6, "nu=%g p=%g x=%g", nu, p, x)
			assert.InEpsilon(t, -x, d.Quantile(1-p), 1e-2, "nu=%g p=%g", nu, p)
		}
	}

	// ν = 1 is the standard Cauchy: q(p) = -cot(πp).
	assert.InEpsilon(t, -1/math.Tan(math.Pi*1e-12), dist.StudentsT[float64]{DOF: 1}.Quantile(1e-12), 1e-8)
}

func TestStudentsTNormalLimit(t *testing.T) {
	t.Parallel()

	tInf := dist.StudentsT[float64]{DOF: math.Inf(1)}
	std := dist.Normal[float64]{Sigma: 1}
	for _, x := range []float64{-3, -0.5, 0, 1.2, 4} {
		assert.Equal(t, std.CDF(x, false), tInf.CDF(x, false))
		assert.Equal(t, std.Density(x, true), tInf.Density(x, true))
	}
	assert.Equal(t, std.Quantile(0.975), tInf.Quantile(0.975))
	assert.InDelta(t, 1.959963984540054, tInf.Quantile(0.975), 1e-12)
}

func TestInverseGammaQuantile(t *testing.T) {
	t.Parallel()

	d := dist.InverseGamma[float64]{Shape: 3, Rate: 2}
	tests := []struct {
		x, p float64
	}{
		{0.3, 0.03803761},
		{0.7, 0.4559447},
		{1.01, 0.6820361},
		{1.58, 0.8649093},
		{2.5, 0.9525774},
		{3.5, 0.9796131},
		{5.0, 0.9920737},
		{7.5, 0.9974089},
		{10.0, 0.9988515188},
	}
	for _, tc := range tests {
		assert.InDelta(t, tc.x, d.Quantile(tc.p), 1e-5, "qinvgamma(%v; 3, 2)", tc.p)
	}
}

// TestInverseGammaQuantileTinyP keeps p below the float spacing near 1 away
// from the lower support bound.
func TestInverseGammaQuantileTinyP(t *testing.T) {
	t.Parallel()

	d := dist.InverseGamma[float64]{Shape: 3, Rate: 2}
	for _, p := range []float64{1e-17, 1e-20} {
		x := d.Quantile(p)
		require.Greater(t, x, 0.0, "p=%g", p)
		assert.InEpsilon(t, p, d.CDF(x, false), 1e-8, "p=%g x=%g", p, x)
	}

	d32 := dist.InverseGamma[float32]{Shape: 3, Rate: 2}
	x32 := d32.Quantile(1e-9)
	require.Greater(t, x32, float32(0))
	assert.InEpsilon(t, 1e-9, float64(d32.CDF(x32, false)), 1e-2)
}

func TestInverseGammaDensityIdentity(t *testing.T) {
	t.Parallel()

	for _, par := range [][2]float64{{3, 2}, {0.5, 1}, {7, 0.3}} {
		ig := dist.InverseGamma[float64]{Shape: par[0], Rate: par[1]}
		g := dist.Gamma[float64]{Shape: par[0], Scale: 1 / par[1]}
		for _, x := range []float64{0.05, 0.3, 1, 2.5, 9} {
			want := g.Density(1/x, false) / (x * x)
			assert.InEpsilon(t, want, ig.Density(x, false), 1e-12, "shape=%g rate=%g x=%g", par[0], par[1], x)
		}
	}
}

func TestBernoulliDraws(t *testing.T) {
	t.Parallel()

	const n = 10000
	const p = 0.3
	src := rand.NewPCG(7, 11)
	d := dist.Bernoulli[float64]{Prob: p}

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := d.Rand(src)
		require.True(t, v == 0 || v == 1, "draw %v", v)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, p, mean, 0.03)
	assert.InDelta(t, p*(1-p), variance, 0.03)
}

func TestNormalLogCDFTail(t *testing.T) {
	t.Parallel()

	std := dist.Normal[float64]{Sigma: 1}
	// Both branches agree where Φ is still representable.
	direct := math.Log(0.5 * math.Erfc(37.5/math.Sqrt2))
	assert.InEpsilon(t, direct, std.CDF(-37.5, true), 1e-10)

	// Far beyond underflow the log CDF stays finite and follows ln φ(z) - ln(-z).
	got := std.CDF(-200, true)
	require.False(t, math.IsInf(got, 0))
	assert.InEpsilon(t, -200*200/2.0-math.Log(200)-0.5*math.Log(2*math.Pi), got, 1e-6)
	assert.Equal(t, 0.0, std.CDF(-200, false))
}

func TestLogFormsSurviveUnderflow(t *testing.T) {
	t.Parallel()

	g := dist.Gamma[float64]{Shape: 50, Scale: 1}
	assert.Equal(t, 0.0, g.Density(1e-8, false))
	assert.InEpsilon(t, 49*math.Log(1e-8)-1e-8-lgamma(50), g.Density(1e-8, true), 1e-12)
	assert.False(t, math.IsInf(g.CDF(1e-8, true), 0))

	tt := dist.StudentsT[float64]{DOF: 3}
	assert.False(t, math.IsInf(tt.CDF(-1e120, true), 0))

	p := dist.Poisson[float64]{Rate: 1000}
	assert.InEpsilon(t, 1000*math.Log(1000)-1000-lgamma(1001), p.Density(1000, true), 1e-12)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
