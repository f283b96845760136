// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/lvstats/dist"
	"github.com/katalvlaran/lvstats/special"
	"github.com/katalvlaran/lvstats/special/precise"
)

type kernelFn = func(x float64, p []float64, logForm bool) float64

// logIn converts a log-probability argument back to a probability.
func logIn(x float64, logForm bool) float64 {
	if logForm {
		return math.Exp(x)
	}
	return x
}

// logOut returns ln v when logForm is set.
func logOut(v float64, logForm bool) float64 {
	if logForm {
		return math.Log(v)
	}
	return v
}

func kernel(name string, params []string, fn kernelFn) Entry {
	return Entry{Name: name, Kind: KindKernel, Params: params, fn: fn}
}

var stdNormal = dist.Normal[float64]{Sigma: 1}

// kernels are the fixed-depth special functions.
var kernels = []Entry{
	kernel("incgamma", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
		if lg {
			return special.LogIncGamma(p[0], x)
		}
		return special.IncGamma(p[0], x)
	}),
	kernel("incgamma_upper", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
		if lg {
			return special.LogIncGammaUpper(p[0], x)
		}
		return special.IncGammaUpper(p[0], x)
	}),
	kernel("incgamma_inv", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
		return special.IncGammaInv(p[0], logIn(x, lg))
	}),
	kernel("incgamma_upper_inv", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
		return special.IncGammaUpperInv(p[0], logIn(x, lg))
	}),
	kernel("incbeta", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
		if lg {
			return special.LogIncBeta(p[0], p[1], x)
		}
		return special.IncBeta(p[0], p[1], x)
	}),
	kernel("incbeta_upper", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
		if lg {
			return special.LogIncBetaUpper(p[0], p[1], x)
		}
		return special.IncBetaUpper(p[0], p[1], x)
	}),
	kernel("incbeta_inv", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
		return special.IncBetaInv(p[0], p[1], logIn(x, lg))
	}),
	kernel("lgamma", nil, func(x float64, _ []float64, _ bool) float64 {
		return special.LogGamma(x)
	}),
	kernel("lbeta", []string{"b"}, func(x float64, p []float64, _ bool) float64 {
		return special.LogBeta(x, p[0])
	}),
	kernel("normal_quantile", nil, func(x float64, _ []float64, lg bool) float64 {
		return stdNormal.Quantile(logIn(x, lg))
	}),
}

// buildPreciseKernels returns the kernels package precise provides, keyed
// by the same names as their fixed-depth counterparts. Precise has no log
// forms, so those are taken as the log of the value.
func buildPreciseKernels() map[string]Entry {
	list := []Entry{
		kernel("incgamma", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
			return logOut(precise.IncGamma(p[0], x), lg)
		}),
		kernel("incgamma_upper", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
			return logOut(precise.IncGammaUpper(p[0], x), lg)
		}),
		kernel("incgamma_inv", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
			return precise.IncGammaInv(p[0], logIn(x, lg))
		}),
		kernel("incgamma_upper_inv", []string{"a"}, func(x float64, p []float64, lg bool) float64 {
			return precise.IncGammaUpperInv(p[0], logIn(x, lg))
		}),
		kernel("incbeta", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
			return logOut(precise.IncBeta(p[0], p[1], x), lg)
		}),
		kernel("incbeta_upper", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
			return logOut(precise.IncBetaUpper(p[0], p[1], x), lg)
		}),
		kernel("incbeta_inv", []string{"a", "b"}, func(x float64, p []float64, lg bool) float64 {
			return precise.IncBetaInv(p[0], p[1], logIn(x, lg))
		}),
		kernel("lbeta", []string{"b"}, func(x float64, p []float64, _ bool) float64 {
			return precise.LogBeta(x, p[0])
		}),
		kernel("normal_quantile", nil, func(x float64, _ []float64, lg bool) float64 {
			return precise.NormalQuantile(logIn(x, lg))
		}),
	}
	out := make(map[string]Entry, len(list))
	for _, e := range list {
		out[e.Name] = e
	}
	return out
}
