// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf is off: NaN and ±Inf are ordinary float64 values, so
// anything Add or Mul can produce can also be loaded back through
// NewDenseFrom or Set. WithValidateNaNInf opts a matrix into strict mode.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// ValidateNaNInf reports whether the resolved configuration rejects
// non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithValidateNaNInf enables rejection of NaN/±Inf in Set and NewDenseFrom.
// Results of arithmetic on a strict matrix are strict as well.
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-value policy, so NaN and ±Inf may
// be stored like any other value. This is the default.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last writer wins.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers can pass optional values through.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
