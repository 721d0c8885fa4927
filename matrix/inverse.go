// SPDX-License-Identifier: MIT
// Package matrix: factorization and inversion kernels.
// LU implements Doolittle factorization without pivoting; Inverse builds A⁻¹
// column-by-column from the factors via triangular solves. Both accept the
// numeric-policy options from options.go and keep the fixed loop orders the
// rest of the package relies on for reproducibility.

package matrix

import (
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); resolve options; allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Behavior highlights:
//   - Deterministic loops; fast path uses direct flat indexing.
//   - A pivot magnitude ≤ the configured tolerance aborts with ErrSingular.
//
// Inputs:
//   - m   : square Matrix (n×n).
//   - opts: numeric policy (WithPivotTolerance); defaults to exact-zero guard.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if |U[i,i]| ≤ tol during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Numerical stability requires pivoting upstream; this kernel is deterministic by design.
//
// AI-Hints:
//   - Use this when you need bit-for-bit reproducibility and your inputs guarantee non-zero pivots.
//   - For stability-sensitive workflows raise the pivot tolerance to catch
//     near-singular inputs instead of dividing by rounding noise.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Resolve numeric policy once for the whole factorization
	cfg := gatherOptions(opts...)

	// Allocate L and U
	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense
	// mRaw holds the input data if m is *Dense
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	// Execute Doolittle decomposition
	if useFast {
		// Fast-path: operate directly on flat slices
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i
			for j = i; j < n; j++ {
				sum = ZeroSum
				baseI = i * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseI+k] * Uraw.data[k*n+j]
				}
				Uraw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard (deterministic singularity detection)
			if math.Abs(Uraw.data[i*n+i]) <= cfg.pivotTol {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseJ+k] * Uraw.data[k*n+i]
				}
				pivot = Uraw.data[i*n+i]
				Lraw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}
	} else {
		// Fallback: generic interface version
		var a, l, u float64
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					l, err = Lraw.At(i, k)
					if err != nil {
						return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
					}
					u, err = Uraw.At(k, j)
					if err != nil {
						return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, j, err))
					}
					sum += l * u
				}
				a, err = m.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				if err = Uraw.Set(i, j, a-sum); err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", i, j, err))
				}
			}

			// Pivot guard (generic path)
			pivot, err = Uraw.At(i, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if math.Abs(pivot) <= cfg.pivotTol {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					l, err = Lraw.At(j, k)
					if err != nil {
						return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, k, err))
					}
					u, err = Uraw.At(k, i)
					if err != nil {
						return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, i, err))
					}
					sum += l * u
				}
				a, err = m.At(j, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
				}
				if err = Lraw.Set(j, i, (a-sum)/pivot); err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", j, i, err))
				}
			}
		}
	}

	// Return L and U
	return Lraw, Uraw, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting (deterministic).
// The input must be non-nil and square. Returns ErrSingular if a pivot within
// the configured tolerance of zero is detected. Produces new Dense matrices;
// does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Factorize via LU(m, opts...) → L (unit lower), U (upper).
//     Allocate invDense(n×n) and workspace vectors y, x of length n.
//   - Stage 2: For each canonical basis column e_col:
//   - Forward solve L*y = e_col (top-down).
//   - Backward solve U*x = y    (bottom-up; check pivots against tolerance).
//   - Write x into column `col` of invDense.
//     Dense fast-path uses flat indexing; generic fallback uses At/Set.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - No pivoting by design (stable determinism and reproducibility).
//   - Input m is read-only; factors L and U are freshly allocated by LU.
//   - Exactly-zero result cells are stored as +0: the triangular solves can
//     produce IEEE -0.0, which is canonicalized before the write-back so
//     String() renders 0 rather than -0.
//
// Inputs:
//   - m   : non-nil square matrix (n×n).
//   - opts: numeric policy forwarded to LU and the triangular solves
//     (WithPivotTolerance).
//
// Returns:
//   - Matrix: Dense(n×n) containing A⁻¹.
//   - error : validation/factorization/solve failures wrapped with opInverse.
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil), ErrNonSquare (ValidateSquare),
//     ErrSingular (|U[i,i]| ≤ tol), propagated LU/allocation errors.
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3): Doolittle LU is O(n^3); solving n RHS via triangular solves is O(n^3).
//   - Space O(n^2): L, U, and invDense are O(n^2); y, x are O(n).
//
// Notes:
//   - If you only need A⁻¹*b, solve via LU once and apply triangular solves
//     (cheaper than forming A⁻¹).
//
// AI-Hints:
//   - Avoid near-singular inputs (tiny U[i,i]); raise WithPivotTolerance to
//     detect them upstream instead of amplifying rounding error.
//   - Keep inputs as *Dense to hit the fast-path inside LU and the solves.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// Resolve numeric policy once; the same tolerance guards LU and the solves
	cfg := gatherOptions(opts...)

	// LU decomposition (Doolittle)
	Lmat, Umat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays
	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// Fast-path: detect *Dense for L and U
	Ld, okL := Lmat.(*Dense)
	Ud, okU := Umat.(*Dense)
	if okL && okU {
		// row-major stride
		var baseUi, baseLi int
		for col = 0; col < n; col++ {
			// Forward substitution: L*y = e_col
			for i = 0; i < n; i++ {
				sum = ZeroSum
				baseLi = i * n
				for k = 0; k < i; k++ {
					sum += Ld.data[baseLi+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward substitution: U*x = y
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				baseUi = i * n
				for k = i + 1; k < n; k++ {
					sum += Ud.data[baseUi+k] * x[k]
				}
				pivot = Ud.data[baseUi+i]
				if math.Abs(pivot) <= cfg.pivotTol {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
				// Canonicalize IEEE -0.0 (y[i] = -sum above produces it for
				// exactly-zero cells) so stored inverses render as 0, not -0.
				if x[i] == 0 {
					x[i] = 0
				}
			}
			// Write x into column col of inv
			for i = 0; i < n; i++ {
				invDense.data[i*n+col] = x[i]
			}
		}

		return invDense, nil
	}

	// Fallback: generic interface version
	var v float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				v, err = Lmat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				v, err = Umat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			pivot, err = Umat.At(i, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if math.Abs(pivot) <= cfg.pivotTol {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
			// Same -0.0 canonicalization as the fast path.
			if x[i] == 0 {
				x[i] = 0
			}
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			if err = invDense.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return invDense, nil
}
