// SPDX-License-Identifier: MIT
// Package pinv_test verifies the Moore-Penrose identities on full-rank and
// rank-deficient inputs, the cutoff behavior, and buffer validation.

package pinv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlsvd/cmatrix"
	"github.com/katalvlaran/lvlsvd/csvd"
	"github.com/katalvlaran/lvlsvd/pinv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mpTol is the verification tolerance for single-precision results.
const mpTol = 1e-4

// pinned3x3 is the reference complex matrix shared with the csvd tests.
func pinned3x3() []complex64 {
	return []complex64{
		complex(0.4032, 0.0876), complex(0.1678, 0.0390), complex(0.5425, 0.5118),
		complex(0.3174, 0.3352), complex(0.9784, 0.4514), complex(-0.4416, -1.3188),
		complex(0.4008, -0.0504), complex(0.0979, -0.2558), complex(0.2983, 0.7800),
	}
}

// pseudoInverse runs PseudoInverse on a copy of src and returns INV as a
// Dense, keeping src intact for later verification.
func pseudoInverse(t *testing.T, src []complex64, m, n int) *cmatrix.Dense {
	t.Helper()

	a := make([]complex64, len(src))
	copy(a, src)
	inv := make([]complex64, n*m)
	require.NoError(t, pinv.PseudoInverse(a, m, n, inv))

	d, err := cmatrix.NewDenseFromSlice(n, m, inv)
	require.NoError(t, err)

	return d
}

// requireMoorePenrose asserts the defining identity A·A⁺·A ≈ A.
func requireMoorePenrose(t *testing.T, src []complex64, m, n int, invD *cmatrix.Dense) {
	t.Helper()

	orig, err := cmatrix.NewDenseFromSlice(m, n, src)
	require.NoError(t, err)

	ainv, err := cmatrix.Mul(orig, invD)
	require.NoError(t, err)
	aia, err := cmatrix.Mul(ainv, orig)
	require.NoError(t, err)

	diff, err := cmatrix.MaxAbsDiff(aia, orig)
	require.NoError(t, err)
	assert.Less(t, diff, float64(mpTol), "A·A⁺·A must reproduce A")
}

// TestPseudoInverse_Validation covers buffer checks and the propagation
// of decomposition sentinels through the facade.
func TestPseudoInverse_Validation(t *testing.T) {
	inv := make([]complex64, 9)

	err := pinv.PseudoInverse(make([]complex64, 8), 3, 3, inv)
	assert.ErrorIs(t, err, pinv.ErrShortBuffer, "short A must be rejected")

	err = pinv.PseudoInverse(make([]complex64, 9), 3, 3, inv[:8])
	assert.ErrorIs(t, err, pinv.ErrShortBuffer, "short INV must be rejected")

	// A decomposition failure surfaces through errors.Is unchanged.
	err = pinv.PseudoInverse(make([]complex64, 6), 2, 3, make([]complex64, 6))
	assert.ErrorIs(t, err, csvd.ErrRowsLessThanCols)

	// Negative dimensions must fail with shape sentinels, never reach the
	// factor allocation (m*n underflow would defeat the length guards).
	err = pinv.PseudoInverse(make([]complex64, 6), -2, -3, make([]complex64, 6))
	assert.ErrorIs(t, err, csvd.ErrColsOutOfRange)

	err = pinv.PseudoInverse(make([]complex64, 6), -2, 3, make([]complex64, 6))
	assert.ErrorIs(t, err, csvd.ErrRowsOutOfRange)
}

// TestFromSVD_Validation covers the builder's own length guards.
func TestFromSVD_Validation(t *testing.T) {
	const m, n = 3, 2
	s := make([]float32, m)
	u := make([]complex64, m*m)
	v := make([]complex64, n*n)
	inv := make([]complex64, n*m)

	assert.ErrorIs(t, pinv.FromSVD(s[:m-1], u, v, m, n, inv), pinv.ErrShortBuffer)
	assert.ErrorIs(t, pinv.FromSVD(s, u[:m*m-1], v, m, n, inv), pinv.ErrShortBuffer)
	assert.ErrorIs(t, pinv.FromSVD(s, u, v[:n*n-1], m, n, inv), pinv.ErrShortBuffer)
	assert.ErrorIs(t, pinv.FromSVD(s, u, v, m, n, inv[:n*m-1]), pinv.ErrShortBuffer)
}

// TestPseudoInverse_SquareNonSingular checks that a well-conditioned
// square matrix yields a true inverse: A·A⁺ ≈ A⁺·A ≈ I.
func TestPseudoInverse_SquareNonSingular(t *testing.T) {
	src := []complex64{
		2, 0, 1,
		0, 3, 0,
		1, 0, 2,
	}
	invD := pseudoInverse(t, src, 3, 3)

	orig, err := cmatrix.NewDenseFromSlice(3, 3, src)
	require.NoError(t, err)
	eye, err := cmatrix.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, eye.Set(i, i, 1))
	}

	left, err := cmatrix.Mul(invD, orig)
	require.NoError(t, err)
	right, err := cmatrix.Mul(orig, invD)
	require.NoError(t, err)

	dl, err := cmatrix.MaxAbsDiff(left, eye)
	require.NoError(t, err)
	dr, err := cmatrix.MaxAbsDiff(right, eye)
	require.NoError(t, err)
	assert.Less(t, dl, float64(mpTol), "A⁺·A must be the identity")
	assert.Less(t, dr, float64(mpTol), "A·A⁺ must be the identity")
}

// TestPseudoInverse_PinnedComplex runs the reference complex matrix
// through the facade and verifies the Moore-Penrose identity.
func TestPseudoInverse_PinnedComplex(t *testing.T) {
	src := pinned3x3()
	invD := pseudoInverse(t, src, 3, 3)
	requireMoorePenrose(t, src, 3, 3, invD)
}

// TestPseudoInverse_Rectangular checks a tall 4×2 system: the result is
// 2×4 and a left inverse (A⁺·A ≈ I₂).
func TestPseudoInverse_Rectangular(t *testing.T) {
	src := []complex64{
		1, complex(0, 1),
		complex(0, -1), 2,
		1, 0,
		0, complex(1, 1),
	}
	invD := pseudoInverse(t, src, 4, 2)
	assert.Equal(t, 2, invD.Rows())
	assert.Equal(t, 4, invD.Cols())

	orig, err := cmatrix.NewDenseFromSlice(4, 2, src)
	require.NoError(t, err)
	prod, err := cmatrix.Mul(invD, orig)
	require.NoError(t, err)

	eye, err := cmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, eye.Set(0, 0, 1))
	require.NoError(t, eye.Set(1, 1, 1))

	diff, err := cmatrix.MaxAbsDiff(prod, eye)
	require.NoError(t, err)
	assert.Less(t, diff, float64(mpTol), "full column rank implies A⁺·A = I")
}

// TestPseudoInverse_RankDeficient verifies the cutoff path: a singular
// matrix must produce a finite pseudo-inverse (no Inf/NaN) that still
// satisfies A·A⁺·A ≈ A.
func TestPseudoInverse_RankDeficient(t *testing.T) {
	src := []complex64{
		1, 2, 3,
		0, 0, 0,
		4, 5, 6,
	}
	invD := pseudoInverse(t, src, 3, 3)

	for i, z := range invD.Data() {
		re, im := float64(real(z)), float64(imag(z))
		assert.False(t, math.IsInf(re, 0) || math.IsNaN(re), "inv[%d] real not finite", i)
		assert.False(t, math.IsInf(im, 0) || math.IsNaN(im), "inv[%d] imag not finite", i)
	}

	requireMoorePenrose(t, src, 3, 3, invD)
}

// TestFromSVD_ConsumesS pins the documented in-place behavior: on return
// S holds the reciprocals, cut values are zeroed, and the tail is padded.
func TestFromSVD_ConsumesS(t *testing.T) {
	const m, n = 3, 2
	s := []float32{4, 1e-6, 99} // 99 is stale tail garbage past N
	u := make([]complex64, m*m)
	v := make([]complex64, n*n)
	for i := 0; i < m; i++ {
		u[i*m+i] = 1
	}
	for i := 0; i < n; i++ {
		v[i*n+i] = 1
	}
	inv := make([]complex64, n*m)

	require.NoError(t, pinv.FromSVD(s, u, v, m, n, inv))

	assert.Equal(t, float32(0.25), s[0], "s[0] reciprocated")
	assert.Equal(t, float32(0), s[1], "s[1] below cutoff, zeroed")
	assert.Equal(t, float32(0), s[2], "tail zero-padded to M")

	// With identity factors INV is diag(s⁺) in the leading block.
	assert.Equal(t, complex64(0.25), inv[0*m+0])
	assert.Equal(t, complex64(0), inv[1*m+1])
}

// TestFromSVD_CutoffOverride shows WithCutoff changing which values are
// suppressed.
func TestFromSVD_CutoffOverride(t *testing.T) {
	const m, n = 2, 2
	u := []complex64{1, 0, 0, 1}
	v := []complex64{1, 0, 0, 1}

	// Under the default cutoff 1e-2 survives; under 0.1 it is dropped.
	s := []float32{1, 1e-2}
	inv := make([]complex64, 4)
	require.NoError(t, pinv.FromSVD(s, u, v, m, n, inv, pinv.WithCutoff(0.1)))
	assert.Equal(t, complex64(0), inv[1*m+1], "1e-2 must fall below the raised cutoff")

	s = []float32{1, 1e-2}
	require.NoError(t, pinv.FromSVD(s, u, v, m, n, inv))
	assert.InDelta(t, 100.0, float64(real(inv[1*m+1])), 1e-2, "default cutoff keeps 1e-2")
}

// TestWithCutoff_PanicsOnNonsense: negative, NaN, and Inf cutoffs are
// programmer errors.
func TestWithCutoff_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { pinv.WithCutoff(-1) })
	assert.Panics(t, func() { pinv.WithCutoff(float32(math.NaN())) })
	assert.Panics(t, func() { pinv.WithCutoff(float32(math.Inf(1))) })

	// Zero is a legitimate "keep everything positive" request.
	assert.NotPanics(t, func() { pinv.WithCutoff(0) })
}
