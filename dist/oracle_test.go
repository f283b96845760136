// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvstats/dist"
)

// oracle is the part of a gonum distribution the comparisons use.
type oracle interface {
	Prob(x float64) float64
	LogProb(x float64) float64
	CDF(x float64) float64
}

type quantiler interface {
	Quantile(p float64) float64
}

type oracleCase struct {
	name string
	d    dist.Distribution[float64]
	ref  oracle
	xs   []float64 // nil: probe the bulk of the support
}

func oracleCases() []oracleCase {
	return []oracleCase{
		{"Normal", dist.Normal[float64]{Mu: 3, Sigma: 2}, distuv.Normal{Mu: 3, Sigma: 2}, nil},
		{"LogNormal", dist.LogNormal[float64]{Mu: 0.2, Sigma: 0.6}, distuv.LogNormal{Mu: 0.2, Sigma: 0.6}, nil},
		{"Exponential", dist.Exponential[float64]{Rate: 1.5}, distuv.Exponential{Rate: 1.5}, nil},
		{"Gamma/small", dist.Gamma[float64]{Shape: 0.4, Scale: 3}, distuv.Gamma{Alpha: 0.4, Beta: 1.0 / 3}, nil},
		{"Gamma/large", dist.Gamma[float64]{Shape: 120, Scale: 0.5}, distuv.Gamma{Alpha: 120, Beta: 2}, nil},
		{"ChiSquared", dist.ChiSquared[float64]{DOF: 7}, distuv.ChiSquared{K: 7}, nil},
		{"InverseGamma", dist.InverseGamma[float64]{Shape: 3, Rate: 2}, distuv.InverseGamma{Alpha: 3, Beta: 2}, nil},
		{"Weibull", dist.Weibull[float64]{Shape: 1.7, Scale: 2}, distuv.Weibull{K: 1.7, Lambda: 2}, nil},
		{"Beta/skewed", dist.Beta[float64]{Alpha: 2.5, Beta: 0.7}, distuv.Beta{Alpha: 2.5, Beta: 0.7}, nil},
		{"Beta/large", dist.Beta[float64]{Alpha: 300, Beta: 40}, distuv.Beta{Alpha: 300, Beta: 40}, nil},
		{"F", dist.F[float64]{DF1: 4, DF2: 9}, distuv.F{D1: 4, D2: 9}, nil},
		{"StudentsT/2.1", dist.StudentsT[float64]{DOF: 2.1}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 2.1}, nil},
		{"StudentsT/30", dist.StudentsT[float64]{DOF: 30}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 30}, nil},
		{"Laplace", dist.Laplace[float64]{Mu: 1, Scale: 0.5}, distuv.Laplace{Mu: 1, Scale: 0.5}, nil},
		{"Logistic", dist.Logistic[float64]{Mu: -2, Scale: 1.5}, distuv.Logistic{Mu: -2, S: 1.5}, nil},
		{"Uniform", dist.Uniform[float64]{Min: -1, Max: 3}, distuv.Uniform{Min: -1, Max: 3}, nil},
		{"Bernoulli", dist.Bernoulli[float64]{Prob: 0.3}, distuv.Bernoulli{P: 0.3}, []float64{0, 1}},
		{"Binomial", dist.Binomial[float64]{N: 20, Prob: 0.35},
			distuv.Binomial{N: 20, P: 0.35}, []float64{0, 1, 3, 7, 10, 15, 19, 20}},
		{"Poisson", dist.Poisson[float64]{Rate: 4.5},
			distuv.Poisson{Lambda: 4.5}, []float64{0, 1, 2, 4, 5, 9, 15, 25}},
	}
}

func TestAgainstGonum(t *testing.T) {
	t.Parallel()

	for _, tc := range oracleCases() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			xs := tc.xs
			if xs == nil {
				xs = probeGrid(tc.d)
			}
			for _, x := range xs {
				assert.InEpsilon(t, tc.ref.Prob(x), tc.d.Density(x, false), 1e-9, "density x=%g", x)
				lp := tc.ref.LogProb(x)
				assert.InDelta(t, lp, tc.d.Density(x, true), 1e-9*math.Max(1, math.Abs(lp)), "log density x=%g", x)
				assert.InDelta(t, tc.ref.CDF(x), tc.d.CDF(x, false), 1e-10, "cdf x=%g", x)
			}

			q, ok := tc.ref.(quantiler)
			if !ok || tc.xs != nil {
				return
			}
			for _, p := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
				assert.InEpsilon(t, q.Quantile(p), tc.d.Quantile(p), 1e-8, "quantile p=%g", p)
			}
		})
	}
}
