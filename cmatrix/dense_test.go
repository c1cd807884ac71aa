// SPDX-License-Identifier: MIT
package cmatrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlsvd/cmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Validation covers constructor dimension checks and the
// zero-initialization guarantee.
func TestNewDense_Validation(t *testing.T) {
	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 3},
		{"negative cols", 3, -2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := cmatrix.NewDense(tc.rows, tc.cols)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)
		})
	}

	m, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i, z := range m.Data() {
		assert.Equal(t, complex64(0), z, "element %d must start zeroed", i)
	}
}

// TestNewDenseFromSlice verifies the zero-copy adoption path: exact
// length required, and mutations through the slice are visible.
func TestNewDenseFromSlice(t *testing.T) {
	data := []complex64{1, 2, 3, 4, 5, 6}

	_, err := cmatrix.NewDenseFromSlice(0, 6, data)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)

	_, err = cmatrix.NewDenseFromSlice(2, 2, data)
	assert.ErrorIs(t, err, cmatrix.ErrShapeMismatch, "length must equal rows*cols exactly")

	m, err := cmatrix.NewDenseFromSlice(2, 3, data)
	require.NoError(t, err)

	// The Dense aliases the caller slice, no copy.
	data[4] = complex(9, -9)
	got, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, complex64(complex(9, -9)), got)
}

// TestDense_AtSet covers element access and bounds checking.
func TestDense_AtSet(t *testing.T) {
	m, err := cmatrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, complex(1, -2)))
	got, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, complex64(complex(1, -2)), got)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, cmatrix.ErrIndexOutOfBounds, "At(%d,%d)", idx[0], idx[1])

		err = m.Set(idx[0], idx[1], 1)
		assert.ErrorIs(t, err, cmatrix.ErrIndexOutOfBounds, "Set(%d,%d)", idx[0], idx[1])
	}
}

// TestDense_Clone ensures the copy is deep: writes to the clone must not
// leak into the original.
func TestDense_Clone(t *testing.T) {
	orig, err := cmatrix.NewDenseFromSlice(2, 2, []complex64{1, 2, 3, 4})
	require.NoError(t, err)

	cl := orig.Clone()
	require.NoError(t, cl.Set(0, 0, complex(7, 7)))

	got, err := orig.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex64(1), got, "clone must not share backing storage")
	assert.Equal(t, orig.Rows(), cl.Rows())
	assert.Equal(t, orig.Cols(), cl.Cols())
}

// TestDense_String pins the row-bracketed rendering used in debugging.
func TestDense_String(t *testing.T) {
	m, err := cmatrix.NewDenseFromSlice(1, 2, []complex64{complex(1, -2), complex(0, 3)})
	require.NoError(t, err)
	assert.Equal(t, "[1-2i, 0+3i]\n", m.String())
}
