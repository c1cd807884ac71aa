// SPDX-License-Identifier: MIT
// Package csvd: sentinel error set.
// This file defines ONLY package-level sentinel errors. Decompose MUST
// return these sentinels (wrapped with the operation tag at the facade)
// and tests MUST check them via errors.Is. Every precondition violation is
// raised before any output buffer is touched, and is terminal: the caller
// must fix the call site — there is no partial progress to resume.

package csvd

import "errors"

var (
	// ErrColsOutOfRange is returned when the column count N is below 1.
	ErrColsOutOfRange = errors.New("csvd: column count must be at least 1")

	// ErrExceedsMaxDim is returned when N exceeds the compiled scratch
	// capacity MaxDim. Raising the limit requires recompiling with a
	// larger constant; it is a design bound, not a runtime knob.
	ErrExceedsMaxDim = errors.New("csvd: column count exceeds MaxDim")

	// ErrRowsOutOfRange is returned when the row count M is below 1.
	ErrRowsOutOfRange = errors.New("csvd: row count must be at least 1")

	// ErrRowsLessThanCols is returned when M < N; the algorithm requires
	// at least as many rows as columns. Decompose the conjugate transpose
	// and swap the factors if your matrix is wide.
	ErrRowsLessThanCols = errors.New("csvd: row count must not be less than column count")

	// ErrAuxColsNegative is returned when the auxiliary column count P is
	// negative.
	ErrAuxColsNegative = errors.New("csvd: auxiliary column count must not be negative")

	// ErrFactorWidth is returned when NU or NV is outside its valid range.
	// NU must be 0 or in [N, M]; NV must be 0 or exactly N. A nonzero
	// width below N would make the QR rotations write past the factor's
	// row width — the classic Fortran layout absorbed that silently, a
	// flat row-major layout must reject it.
	ErrFactorWidth = errors.New("csvd: factor width out of range")

	// ErrShortBuffer is returned when a caller-owned slice (A, S, U, or V)
	// is too short for the requested shape.
	ErrShortBuffer = errors.New("csvd: caller buffer too short")
)
