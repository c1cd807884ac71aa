// SPDX-License-Identifier: MIT
// Package cmatrix: fail-fast kernels over Dense operands.
// All kernels validate first, allocate exactly one fresh result, and walk
// the backing slices in a fixed, deterministic order. Operands are never
// mutated.

package cmatrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opConjTranspose = "ConjTranspose"
	opAdd           = "Add"
	opSub           = "Sub"
	opScaleCols     = "ScaleCols"
	opMaxAbsDiff    = "MaxAbsDiff"
)

// cmatrixErrorf wraps err with an operation tag, preserving the original
// error via %w so call sites still match sentinels with errors.Is.
// Use only when err != nil.
func cmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures a Dense reference is usable.
func validateNotNil(m *Dense) error {
	if m == nil || m.data == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateSameShape ensures a and b are non-nil with equal dimensions.
func validateSameShape(a, b *Dense) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func validateMulCompatible(a, b *Dense) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// conj64 returns the complex conjugate of z in single precision.
func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): both operands non-nil, A.Cols == B.Rows.
// Stage 2 (Execute): fixed i→k→j loop order with row-major strides,
// skipping zero A[i,k] entries.
// Complexity: O(r*n*c) time, O(r*c) space for the result.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := validateMulCompatible(a, b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}

	// row-major multiplication into res.data
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	var (
		i, j, k                            int // loop iterators
		av                                 complex64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	// Return result
	return res, nil
}

// ConjTranspose returns a new matrix A* with rows and columns swapped and
// every element conjugated. The original matrix is never mutated.
// Stage 1 (Validate): non-nil input. Allocate Dense(cols, rows).
// Stage 2 (Execute): contiguous flat mapping data[i*c+j] → res[j*r+i].
// Complexity: O(r*c) time and space.
func ConjTranspose(m *Dense) (*Dense, error) {
	// Validate input non-nil
	if err := validateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opConjTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, cmatrixErrorf(opConjTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i], conjugated
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = conj64(m.data[baseSrc+j])
		}
	}

	// Return result
	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper for Add/Sub to share validation,
// allocation, and the flat loop.
func addSub(a, b *Dense, sign complex64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := validateSameShape(a, b); err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}

	// Single flat loop, deterministic 0..n-1
	length := a.r * a.c
	for idx := 0; idx < length; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time and space.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c) time and space.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// ScaleCols returns a new matrix whose column j is m's column j scaled by
// the real factor d[j]. This is how tests and pinv verification form
// U·diag(S) without materializing the diagonal matrix.
// Stage 1 (Validate): m non-nil, len(d) == m.Cols().
// Stage 2 (Execute): fixed i→j order, flat indexing.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(d) != Cols).
// Complexity: O(r*c) time and space.
func ScaleCols(m *Dense, d []float32) (*Dense, error) {
	// Validate input non-nil
	if err := validateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opScaleCols, err)
	}
	// Validate scale-vector length against the column count
	if len(d) != m.c {
		return nil, cmatrixErrorf(opScaleCols, ErrDimensionMismatch)
	}

	// Allocate result Dense
	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, cmatrixErrorf(opScaleCols, err)
	}

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[base+j] = m.data[base+j] * complex(d[j], 0)
		}
	}

	return res, nil
}

// MaxAbsDiff returns the largest elementwise modulus |a[i,j]-b[i,j]| as a
// float64, the natural norm for tolerance assertions on single-precision
// results.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(1) space.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	// Validate shapes match
	if err := validateSameShape(a, b); err != nil {
		return 0, cmatrixErrorf(opMaxAbsDiff, err)
	}

	var (
		maxAbs, cur float64
		d           complex64
	)
	length := a.r * a.c
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		d = a.data[idx] - b.data[idx]
		cur = math.Hypot(float64(real(d)), float64(imag(d)))
		if cur > maxAbs {
			maxAbs = cur
		}
	}

	return maxAbs, nil
}
