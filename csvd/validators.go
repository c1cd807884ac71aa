// SPDX-License-Identifier: MIT
// Package csvd: canonical precondition checks for Decompose.
//
// Purpose:
//   - Provide a single source of truth for shape and buffer validation.
//   - Keep the engine minimal by delegating every guard here.
//   - Return plain sentinels (no wrapping) so the facade can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Validation runs before any mutation: a failed call leaves every
//     caller buffer byte-for-byte untouched.

package csvd

// validateShape checks the dimensional preconditions in the documented
// priority order: N range → capacity → M range → M vs N → auxiliary and
// factor widths. Complexity: O(1).
func validateShape(m, n, p, nu, nv int) error {
	// N must be at least 1.
	if n < 1 {
		return ErrColsOutOfRange
	}
	// N must fit the compiled scratch capacity.
	if n > MaxDim {
		return ErrExceedsMaxDim
	}
	// M must be at least 1.
	if m < 1 {
		return ErrRowsOutOfRange
	}
	// The reduction requires at least as many rows as columns.
	if m < n {
		return ErrRowsLessThanCols
	}
	// Auxiliary column count is a width, never negative.
	if p < 0 {
		return ErrAuxColsNegative
	}
	// NU is 0 (skip U) or a full set of at least N columns, at most M.
	if nu < 0 || nu > m || (nu > 0 && nu < n) {
		return ErrFactorWidth
	}
	// NV is 0 (skip V) or the full set of N columns. The QR rotations,
	// sign flips and sort swaps address V columns up to N-1 with stride
	// NV, so a partial width would index past the N×NV buffer.
	if nv != 0 && nv != n {
		return ErrFactorWidth
	}

	return nil
}

// validateBuffers checks that every caller-owned slice can hold the
// requested shape. Decompose addresses A as M×(N+P), U as M×NU and V as
// N×NV, all row-major. Complexity: O(1).
func validateBuffers(a []complex64, m, n, p, nu, nv int, s []float32, u, v []complex64) error {
	if len(a) < m*(n+p) {
		return ErrShortBuffer
	}
	if len(s) < n {
		return ErrShortBuffer
	}
	if len(u) < m*nu {
		return ErrShortBuffer
	}
	if len(v) < n*nv {
		return ErrShortBuffer
	}

	return nil
}
