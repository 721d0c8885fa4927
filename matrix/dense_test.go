// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and constructors.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmcera/matcache/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			var v float64
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v = MustAt(t, m, i, j)
					if v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrBadShape, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestNewDenseFromRows_Rectangular(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, src)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// Ingestion copies: mutating the source must not leak into the matrix.
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_RaggedAndEmpty(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	MustSet(t, m, 1, 1, 4.5)
	require.Equal(t, 4.5, MustAt(t, m, 1, 1))

	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 2},
	} {
		_, err := m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)

		err = m.Set(tc.i, tc.j, 1.0)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}
}

func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()

	// Mutating the clone must not touch the original, and vice versa.
	MustSet(t, cp, 0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	MustSet(t, m, 1, 1, -4)
	require.Equal(t, 4.0, MustAt(t, cp, 1, 1))
}

func TestIdentityAndLikes(t *testing.T) {
	t.Parallel()

	I := MustIdentity(t, 3)
	var i, j int
	var want float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, I, i, j))
		}
	}

	z, err := matrix.ZerosLike(I)
	require.NoError(t, err)
	require.Equal(t, 3, z.Rows())
	require.Equal(t, 3, z.Cols())

	// IdentityLike refuses rectangular input.
	rect := MustDense(t, 2, 3)
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
