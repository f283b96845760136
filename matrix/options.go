// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and
// formatting. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf is OFF by default: distribution outputs legitimately hold
//     NaN (invalid parameters) and ±Inf (quantile edges), so rejecting them is
//     an explicit opt-in for callers that ingest raw data.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = false

	// DefaultDigits is the significant-digit count used by String/Format.
	// Negative means "shortest representation" (the %g default).
	DefaultDigits = -1

	// maxDigits caps WithDigits; float64 carries at most 17 significant digits.
	maxDigits = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDigitsInvalid = "matrix: WithDigits: digits must be in [1, 17]"
)

// ---------- Public option type (functional) ----------

// Option configures Dense construction or formatting.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration; fields are unexported.
type Options struct {
	validateNaNInf bool
	digits         int
}

// WithValidateNaNInf makes Set and Apply reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithDigits sets the number of significant digits used by Format.
// Panics if digits is outside [1, 17].
func WithDigits(digits int) Option {
	if digits < 1 || digits > maxDigits {
		panic(panicDigitsInvalid)
	}

	return func(o *Options) { o.digits = digits }
}

// NewOptions resolves opts over the defaults; exposed for callers that keep
// a resolved configuration around (the CLI does).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Digits returns the configured significant digits (-1 = shortest).
func (o Options) Digits() int { return o.digits }

func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		digits:         DefaultDigits,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
