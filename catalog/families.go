// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/lvstats/dist"

// family is one distribution exposed under the four R prefixes.
type family struct {
	suffix string
	params []string
	build  func(p []float64) dist.Distribution[float64]
}

var families = []family{
	{"norm", []string{"mean", "sd"}, func(p []float64) dist.Distribution[float64] {
		return dist.Normal[float64]{Mu: p[0], Sigma: p[1]}
	}},
	{"lnorm", []string{"meanlog", "sdlog"}, func(p []float64) dist.Distribution[float64] {
		return dist.LogNormal[float64]{Mu: p[0], Sigma: p[1]}
	}},
	{"exp", []string{"rate"}, func(p []float64) dist.Distribution[float64] {
		return dist.Exponential[float64]{Rate: p[0]}
	}},
	{"gamma", []string{"shape", "scale"}, func(p []float64) dist.Distribution[float64] {
		return dist.Gamma[float64]{Shape: p[0], Scale: p[1]}
	}},
	{"chisq", []string{"df"}, func(p []float64) dist.Distribution[float64] {
		return dist.ChiSquared[float64]{DOF: p[0]}
	}},
	{"invgamma", []string{"shape", "rate"}, func(p []float64) dist.Distribution[float64] {
		return dist.InverseGamma[float64]{Shape: p[0], Rate: p[1]}
	}},
	{"weibull", []string{"shape", "scale"}, func(p []float64) dist.Distribution[float64] {
		return dist.Weibull[float64]{Shape: p[0], Scale: p[1]}
	}},
	{"beta", []string{"shape1", "shape2"}, func(p []float64) dist.Distribution[float64] {
		return dist.Beta[float64]{Alpha: p[0], Beta: p[1]}
	}},
	{"f", []string{"df1", "df2"}, func(p []float64) dist.Distribution[float64] {
		return dist.F[float64]{DF1: p[0], DF2: p[1]}
	}},
	{"t", []string{"df"}, func(p []float64) dist.Distribution[float64] {
		return dist.StudentsT[float64]{DOF: p[0]}
	}},
	{"cauchy", []string{"location", "scale"}, func(p []float64) dist.Distribution[float64] {
		return dist.Cauchy[float64]{Mu: p[0], Sigma: p[1]}
	}},
	{"laplace", []string{"location", "scale"}, func(p []float64) dist.Distribution[float64] {
		return dist.Laplace[float64]{Mu: p[0], Scale: p[1]}
	}},
	{"logis", []string{"location", "scale"}, func(p []float64) dist.Distribution[float64] {
		return dist.Logistic[float64]{Mu: p[0], Scale: p[1]}
	}},
	{"unif", []string{"min", "max"}, func(p []float64) dist.Distribution[float64] {
		return dist.Uniform[float64]{Min: p[0], Max: p[1]}
	}},
	{"bern", []string{"prob"}, func(p []float64) dist.Distribution[float64] {
		return dist.Bernoulli[float64]{Prob: p[0]}
	}},
	{"binom", []string{"size", "prob"}, func(p []float64) dist.Distribution[float64] {
		return dist.Binomial[float64]{N: p[0], Prob: p[1]}
	}},
	{"pois", []string{"lambda"}, func(p []float64) dist.Distribution[float64] {
		return dist.Poisson[float64]{Rate: p[0]}
	}},
}

// prefixes maps the R prefix letter to the entry kind.
var prefixes = []struct {
	letter string
	kind   Kind
}{
	{"d", KindDensity},
	{"p", KindCDF},
	{"q", KindQuantile},
	{"r", KindRandom},
}

func buildRegistry() map[string]Entry {
	reg := make(map[string]Entry, len(families)*len(prefixes)+len(kernels))
	for _, f := range families {
		for _, p := range prefixes {
			name := p.letter + f.suffix
			reg[name] = Entry{Name: name, Kind: p.kind, Params: f.params, build: f.build}
		}
	}
	for _, k := range kernels {
		reg[k.Name] = k
	}
	return reg
}
