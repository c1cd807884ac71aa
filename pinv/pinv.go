// SPDX-License-Identifier: MIT
// Package pinv: the pseudo-inverse builder and its convenience facade.

package pinv

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlsvd/csvd"
)

// ErrShortBuffer indicates that a caller-owned slice (S, U, V, A, or the
// result) is too short for the requested shape.
var ErrShortBuffer = errors.New("pinv: caller buffer too short")

// Operation name constants for unified error wrapping.
const (
	opFromSVD       = "FromSVD"
	opPseudoInverse = "PseudoInverse"
)

// pinvErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is. Use only when err != nil.
func pinvErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// conj64 returns the complex conjugate of z.
func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// FromSVD fills inv with the N×M Moore-Penrose pseudo-inverse
// INV = V·S⁺·U* given a decomposition produced by csvd.Decompose with
// NU = M and NV = N.
//
// Implementation:
//   - Stage 1: validate buffer lengths only (the decomposition itself is
//     trusted, per the builder's contract).
//   - Stage 2: reciprocate s[i] where s[i] > cutoff, zero the rest, and
//     zero-extend s to length M in place.
//   - Stage 3: accumulate inv[i,j] = Σ_k v[i,k]·s⁺[k]·conj(u[j,k]) in a
//     fixed i→j→k order.
//
// Behavior highlights:
//   - s is consumed: on return it holds the padded reciprocal vector.
//   - Singular values at or below the cutoff contribute nothing — a
//     rank-deficient input yields zeros, never Inf or NaN.
//
// Inputs:
//   - s: length ≥ M; first N entries are the singular values.
//   - u: row-major M×M; v: row-major N×N.
//   - m, n: the decomposed matrix's dimensions (N ≤ M).
//   - inv: caller-owned row-major N×M result buffer.
//   - opts: WithCutoff to override DefaultCutoff.
//
// Errors:
//   - ErrShortBuffer when any slice cannot hold its shape.
//
// Complexity:
//   - Time O(n²·m), Space O(1) beyond caller buffers.
func FromSVD(s []float32, u, v []complex64, m, n int, inv []complex64, opts ...Option) error {
	// Validate buffer lengths; everything else is trusted.
	if len(s) < m || len(u) < m*m || len(v) < n*n || len(inv) < n*m {
		return pinvErrorf(opFromSVD, ErrShortBuffer)
	}
	o := gatherOptions(opts...)

	// Reciprocate the non-negligible singular values.
	var i, j, k int
	for i = 0; i < n; i++ {
		if s[i] > o.cutoff {
			s[i] = 1 / s[i]
		} else {
			s[i] = 0
		}
	}
	// Extend S to length M with zero padding.
	for i = n; i < m; i++ {
		s[i] = 0
	}

	// INV = V·S⁺·U*, fixed i→j→k order, stride M in the result.
	var acc complex64
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += v[i*n+k] * complex(s[k], 0) * conj64(u[j*m+k])
			}
			inv[i*m+j] = acc
		}
	}

	return nil
}

// PseudoInverse decomposes the M×N matrix held row-major in a
// (destructively — a is consumed) and fills inv with its N×M
// pseudo-inverse.
//
// Implementation:
//   - Stage 1: validate the dimensions and the two caller buffers.
//   - Stage 2: allocate S (length M), U (M×M), V (N×N) and run
//     csvd.Decompose(a, m, n, 0, m, n, ...).
//   - Stage 3: hand the factors to FromSVD.
//
// Errors:
//   - csvd.ErrColsOutOfRange / csvd.ErrRowsOutOfRange for m or n below 1,
//     raised before any allocation.
//   - ErrShortBuffer for undersized a or inv.
//   - csvd sentinels propagate unchanged (errors.Is still matches
//     csvd.ErrRowsLessThanCols, csvd.ErrExceedsMaxDim, ...).
//
// Complexity:
//   - Time O(m·n² + n²·m), Space O(m² + n² + m) for the factor buffers.
func PseudoInverse(a []complex64, m, n int, inv []complex64, opts ...Option) error {
	// Dimensions first: a negative m or n would slip past the length
	// guards below (m*n underflows) and crash the factor allocation.
	// Raise the same sentinels Decompose would.
	if n < 1 {
		return pinvErrorf(opPseudoInverse, csvd.ErrColsOutOfRange)
	}
	if m < 1 {
		return pinvErrorf(opPseudoInverse, csvd.ErrRowsOutOfRange)
	}
	// Validate the caller's buffers before allocating anything.
	if len(a) < m*n || len(inv) < n*m {
		return pinvErrorf(opPseudoInverse, ErrShortBuffer)
	}

	// Factor storage: S padded to M for the builder's reciprocal vector.
	s := make([]float32, m)
	u := make([]complex64, m*m)
	v := make([]complex64, n*n)

	if err := csvd.Decompose(a, m, n, 0, m, n, s, u, v); err != nil {
		return pinvErrorf(opPseudoInverse, err)
	}

	return FromSVD(s, u, v, m, n, inv, opts...)
}
