// SPDX-License-Identifier: MIT
// Package pinv: functional configuration for the reciprocal cutoff.
//
// Design goals:
//   - Deterministic behavior: no global state, documented defaults.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error); runtime conditions surface as errors.

package pinv

import "math"

// DefaultCutoff is the absolute magnitude below which a singular value is
// treated as zero and its reciprocal suppressed. It is intentionally NOT
// scale-relative: the decomposition's own negligibility threshold adapts
// to the matrix's scale, this one does not. Changing it changes which
// singular values are treated as zero.
const DefaultCutoff float32 = 1e-4

const panicCutoffInvalid = "pinv: WithCutoff: cutoff must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option
// setters. Unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type options struct {
	cutoff float32 // >= 0; DefaultCutoff
}

// WithCutoff overrides the reciprocal cutoff.
// Inputs: cutoff — finite, non-negative magnitude.
// Errors: panics with a stable message when cutoff is invalid.
// Complexity: O(1).
func WithCutoff(cutoff float32) Option {
	if cutoff < 0 || math.IsNaN(float64(cutoff)) || math.IsInf(float64(cutoff), 0) {
		panic(panicCutoffInvalid)
	}

	return func(o *options) { o.cutoff = cutoff }
}

// gatherOptions applies user-provided Option setters on top of the
// documented defaults; last-writer-wins semantics.
func gatherOptions(user ...Option) options {
	o := options{cutoff: DefaultCutoff}
	for _, set := range user {
		set(&o)
	}

	return o
}
