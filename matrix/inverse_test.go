// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the LU and Inverse kernels:
// correctness against known inverses, reconstruction (L*U ≈ A, M×M⁻¹ ≈ I),
// singularity detection under the default and raised pivot tolerances, and
// fast-path vs fallback agreement.
package matrix_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmcera/matcache/matrix"
)

// verifyEps is the verification tolerance for M×M⁻¹ ≈ I assertions.
// Doolittle without pivoting on well-conditioned small fixtures stays well
// inside this bound.
const verifyEps = 1e-9

func TestLU_Reconstruction(t *testing.T) {
	t.Parallel()

	A := MustFromRows(t, [][]float64{
		{4, 3, 0},
		{6, 3, 2},
		{0, 1, 5},
	})

	L, U, err := matrix.LU(A)
	require.NoError(t, err)

	// L must be unit lower triangular, U upper triangular.
	var i, j int
	for i = 0; i < 3; i++ {
		require.Equal(t, 1.0, MustAt(t, L, i, i), "L diagonal must be 1")
		for j = i + 1; j < 3; j++ {
			require.Equal(t, 0.0, MustAt(t, L, i, j), "L above diagonal must be 0")
			require.Equal(t, 0.0, MustAt(t, U, j, i), "U below diagonal must be 0")
		}
	}

	// L*U must reconstruct A.
	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	AssertAllClose(t, A, prod, verifyEps)
}

func TestLU_ZeroLeadingPivot(t *testing.T) {
	t.Parallel()

	// A[0,0] == 0 trips the no-pivoting scheme immediately.
	A := MustFromRows(t, [][]float64{{0, 1}, {1, 0}})
	_, _, err := matrix.LU(A)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Diagonal2x2(t *testing.T) {
	t.Parallel()

	M := MustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	inv, err := matrix.Inverse(M)
	require.NoError(t, err)

	exp := MustFromRows(t, [][]float64{{0.5, 0}, {0, 0.5}})
	AssertAllClose(t, exp, inv, 0)
}

func TestInverse_NoNegativeZeroCells(t *testing.T) {
	t.Parallel()

	// The triangular solves compute off-diagonal zeros as -sum with sum == 0,
	// which is IEEE -0.0 before canonicalization. Check every exactly-zero
	// cell carries a positive sign bit, on both the Dense path and the
	// generic fallback, and that the rendered form never contains "-0".
	M := MustFromRows(t, [][]float64{{2, 0}, {0, 4}})

	for name, in := range map[string]matrix.Matrix{
		"dense":    M,
		"fallback": hide{M},
	} {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			inv, err := matrix.Inverse(in)
			require.NoError(t, err)

			for i := 0; i < inv.Rows(); i++ {
				for j := 0; j < inv.Cols(); j++ {
					v := MustAt(t, inv, i, j)
					if v == 0 {
						require.False(t, math.Signbit(v), "cell (%d,%d) is -0", i, j)
					}
				}
			}
			require.NotContains(t, fmt.Sprint(inv), "-0")
		})
	}
}

func TestInverse_StringRendering(t *testing.T) {
	t.Parallel()

	inv, err := matrix.Inverse(MustFromRows(t, [][]float64{{2, 0}, {0, 4}}))
	require.NoError(t, err)

	want := strings.Join([]string{"[0.5, 0]", "[0, 0.25]", ""}, "\n")
	require.Equal(t, want, fmt.Sprint(inv))
}

func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	t.Parallel()

	for name, rows := range map[string][][]float64{
		"2x2": {{4, 7}, {2, 6}},
		"3x3": {{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}},
		"4x4": {{5, 1, 0, 0}, {1, 4, 1, 0}, {0, 1, 3, 1}, {0, 0, 1, 2}},
	} {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			M := MustFromRows(t, rows)
			inv, err := matrix.Inverse(M)
			require.NoError(t, err)

			prod, err := matrix.Mul(M, inv)
			require.NoError(t, err)
			AssertAllClose(t, MustIdentity(t, len(rows)), prod, verifyEps)

			// Left inverse too: M⁻¹ × M ≈ I.
			prod, err = matrix.Mul(inv, M)
			require.NoError(t, err)
			AssertAllClose(t, MustIdentity(t, len(rows)), prod, verifyEps)
		})
	}
}

func TestInverse_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	M := MustFromRows(t, [][]float64{{3, 1}, {1, 2}})

	fast, err := matrix.Inverse(M)
	require.NoError(t, err)
	// Hiding the concrete type forces the generic LU and solve paths.
	slow, err := matrix.Inverse(hide{M})
	require.NoError(t, err)

	AssertAllClose(t, fast, slow, 0)
}

func TestInverse_SingularMatrix(t *testing.T) {
	t.Parallel()

	// Second row is 2× the first: rank 1, no inverse exists.
	M := MustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(M)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_Validation(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// A typed-nil *Dense boxed into the interface is the same misuse and must
	// not reach the kernels, whose method calls would panic on it.
	_, err = matrix.Inverse((*matrix.Dense)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := MustDense(t, 2, 3)
	_, err = matrix.Inverse(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_PivotTolerance(t *testing.T) {
	t.Parallel()

	// The trailing pivot is tiny but non-zero: exactly invertible, numerically
	// hopeless. The default exact-zero guard lets it through; a raised
	// tolerance classifies it as singular.
	M := MustFromRows(t, [][]float64{{1, 0}, {0, 1e-13}})

	_, err := matrix.Inverse(M)
	require.NoError(t, err, "default tolerance accepts non-zero pivots")

	_, err = matrix.Inverse(M, matrix.WithPivotTolerance(1e-9))
	require.ErrorIs(t, err, matrix.ErrSingular, "raised tolerance flags near-singular input")
}

func TestInverse_InputNotMutated(t *testing.T) {
	t.Parallel()

	M := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})
	snapshot := M.Clone()

	_, err := matrix.Inverse(M)
	require.NoError(t, err)

	AssertAllClose(t, snapshot, M, 0)
}
