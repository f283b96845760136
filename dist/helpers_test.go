// SPDX-License-Identifier: MIT

package dist_test

import (
	"math"

	"github.com/katalvlaran/lvstats/dist"
)

// named pairs a distribution with a readable label for subtests.
type named struct {
	name string
	d    dist.Distribution[float64]
}

var nan = math.NaN()

// validCatalog holds one representative parameterization per distribution.
func validCatalog() []named {
	return []named{
		{"Bernoulli", dist.Bernoulli[float64]{Prob: 0.3}},
		{"Beta", dist.Beta[float64]{Alpha: 2.5, Beta: 0.7}},
		{"Binomial", dist.Binomial[float64]{N: 20, Prob: 0.35}},
		{"Cauchy", dist.Cauchy[float64]{Mu: -1, Sigma: 2}},
		{"ChiSquared", dist.ChiSquared[float64]{DOF: 3}},
		{"Exponential", dist.Exponential[float64]{Rate: 1.5}},
		{"F", dist.F[float64]{DF1: 4, DF2: 9}},
		{"Gamma", dist.Gamma[float64]{Shape: 2.2, Scale: 0.8}},
		{"InverseGamma", dist.InverseGamma[float64]{Shape: 3, Rate: 2}},
		{"Laplace", dist.Laplace[float64]{Mu: 1, Scale: 0.5}},
		{"Logistic", dist.Logistic[float64]{Mu: -2, Scale: 1.5}},
		{"LogNormal", dist.LogNormal[float64]{Mu: 0.2, Sigma: 0.6}},
		{"Normal", dist.Normal[float64]{Mu: 3, Sigma: 2}},
		{"Poisson", dist.Poisson[float64]{Rate: 4.5}},
		{"StudentsT", dist.StudentsT[float64]{DOF: 5}},
		{"Uniform", dist.Uniform[float64]{Min: -1, Max: 3}},
		{"Weibull", dist.Weibull[float64]{Shape: 1.7, Scale: 2}},
	}
}

// continuousCatalog is validCatalog without the discrete distributions.
func continuousCatalog() []named {
	var out []named
	for _, n := range validCatalog() {
		switch n.name {
		case "Bernoulli", "Binomial", "Poisson":
			continue
		}
		out = append(out, n)
	}
	return out
}

// probeGrid returns points spread over the bulk of d's support.
func probeGrid(d dist.Distribution[float64]) []float64 {
	var xs []float64
	for _, p := range []float64{0.005, 0.05, 0.2, 0.35, 0.5, 0.65, 0.8, 0.95, 0.995} {
		xs = append(xs, d.Quantile(p))
	}
	return xs
}
