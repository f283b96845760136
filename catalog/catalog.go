// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvstats/dist"
)

// Kind classifies catalog entries.
type Kind uint8

// Entry kinds. The R prefixes d, p, q and r map to the first four.
const (
	KindDensity Kind = iota
	KindCDF
	KindQuantile
	KindRandom
	KindKernel
)

var kindNames = [...]string{"density", "cdf", "quantile", "random", "kernel"}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// Entry is one named function of the catalog.
//
// The meaning of logForm in Eval depends on Kind:
//   - density, cdf: return the natural log of the result.
//   - quantile and the *_inv kernels: x is a log-probability.
//   - other kernels: return the log of the result where a log form exists
//     (incgamma, incbeta and their upper forms); lgamma, lbeta ignore it.
//   - random: ignored.
type Entry struct {
	Name   string
	Kind   Kind
	Params []string

	build func(params []float64) dist.Distribution[float64]
	fn    func(x float64, params []float64, logForm bool) float64
}

// Eval checks the parameter count and evaluates the entry at x. Random
// entries ignore x and draw one variate from the global generator.
func (e Entry) Eval(x float64, params []float64, logForm bool) (float64, error) {
	f, err := e.Bind(params, logForm)
	if err != nil {
		return math.NaN(), err
	}
	return f(x), nil
}

// Bind checks the parameter count once and returns the entry as a
// single-argument kernel, ready for elementwise.Map.
func (e Entry) Bind(params []float64, logForm bool) (func(float64) float64, error) {
	if len(params) != len(e.Params) {
		return nil, catalogErrorf(e.Name, fmt.Errorf("%w: want %d (%s), got %d",
			ErrArity, len(e.Params), strings.Join(e.Params, ", "), len(params)))
	}
	ps := append([]float64(nil), params...)
	if e.fn != nil {
		return func(x float64) float64 { return e.fn(x, ps, logForm) }, nil
	}

	d := e.build(ps)
	switch e.Kind {
	case KindDensity:
		return func(x float64) float64 { return d.Density(x, logForm) }, nil
	case KindCDF:
		return func(x float64) float64 { return d.CDF(x, logForm) }, nil
	case KindQuantile:
		if logForm {
			return func(x float64) float64 { return d.Quantile(math.Exp(x)) }, nil
		}
		return d.Quantile, nil
	default:
		return func(float64) float64 { return d.Rand(nil) }, nil
	}
}

// Distribution returns the parameterized distribution behind a d/p/q/r
// entry, or ErrNotDistribution for kernels.
func (e Entry) Distribution(params []float64) (dist.Distribution[float64], error) {
	if e.build == nil {
		return nil, catalogErrorf(e.Name, ErrNotDistribution)
	}
	if len(params) != len(e.Params) {
		return nil, catalogErrorf(e.Name, ErrArity)
	}
	return e.build(append([]float64(nil), params...)), nil
}

var (
	registry        = buildRegistry()
	preciseRegistry = buildPreciseKernels()
)

// Lookup resolves name (dnorm, pt, qinvgamma, rpois, incgamma, ...).
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, catalogErrorf(name, ErrUnknown)
	}
	return e, nil
}

// LookupPrecise is Lookup with kernel entries routed through the
// convergence-checked package special/precise where it offers them.
func LookupPrecise(name string) (Entry, error) {
	if e, ok := preciseRegistry[name]; ok {
		return e, nil
	}
	return Lookup(name)
}

// Names returns every entry name in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Entries returns the entries of the given kinds (all kinds when none are
// given) sorted by name.
func Entries(kinds ...Kind) []Entry {
	want := func(k Kind) bool {
		if len(kinds) == 0 {
			return true
		}
		for _, w := range kinds {
			if w == k {
				return true
			}
		}
		return false
	}
	var out []Entry
	for _, n := range Names() {
		if e := registry[n]; want(e.Kind) {
			out = append(out, e)
		}
	}
	return out
}
