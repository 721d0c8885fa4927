// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation.
// This file declares the shared kernel scaffolding (operation tags, error
// wrapping, accumulation constants) plus the element-wise and multiplication
// kernels used to build and verify inverses. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Factorization kernels (LU, Inverse) live in inverse.go (same package) to
//     keep roles clean.
//   - All kernels must use central validators and return plain sentinels or
//     wrapped via matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot-product accumulation and
// forward/backward substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub      = "Sub"
	opMul      = "Mul"
	opAllClose = "AllClose"
	opInverse  = "Inverse"
	opLU       = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g. "Mul", "Inverse").
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - Matrix: a new Dense with C[i,j] = A[i,j] - B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Determinism:
//   - Flat 0..n-1 for *Dense; i→j for the generic path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data; hide concrete
//     types (e.g. via wrappers) to force the fallback path in tests.
func Sub(a, b Matrix) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Mul computes the product C = A × B into a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands non-nil and inner-compatible
//     (A.Cols == B.Rows).
//   - Stage 2: Dense pair → i→k→j accumulation over row-major strides,
//     skipping zero A[i,k]; anything else → generic i→j→k dot products
//     over At, with the same zero-skip.
//
// Behavior highlights:
//   - The i→k→j order streams whole rows of C and B per non-zero A[i,k],
//     which is why the fast path accumulates in place instead of forming
//     each dot product separately.
//   - Zero-skip makes products against identity and triangular factors cheap;
//     both verification (M × M⁻¹ ≈ I) and LU reconstruction lean on it.
//   - One allocation for C; operands are never written.
//
// Inputs:
//   - a: left operand, shape (r × n).
//   - b: right operand, shape (n × c).
//
// Returns:
//   - Matrix: new Dense of shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch), wrapped with opMul.
//
// Determinism:
//   - Both paths use fixed loop orders; identical inputs give identical C.
//
// Complexity:
//   - Time O(r*n*c) worst case, Space O(r*c); sparse-ish A pays only for its
//     non-zero cells.
//
// AI-Hints:
//   - Keep both operands *Dense to stay on the streaming path; the generic
//     path funds an At call per cell visit.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate nil-ness and inner compatibility in one place.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the zero-initialized result; both paths accumulate into it.
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, acc float64
	)
	// Fast path: both operands *Dense → flat-slice accumulation.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < rows; i++ {
				baseA = i * inner
				baseR = i * cols
				for k = 0; k < inner; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // zero row entry contributes nothing
					}
					baseB = k * cols
					for j = 0; j < cols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic dot product per output cell, fixed i→j→k order.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // same zero-skip as the fast path
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ eps for all cells.
// Implementation:
//   - Stage 1: Validate both operands non-nil and same shape; normalize eps.
//   - Stage 2: Fast-path flat scan for *Dense pairs; generic i→j fallback.
//
// Behavior highlights:
//   - Short-circuits on the first offending cell in a fixed i→j order.
//   - Negative eps is flipped to its absolute value; NaN entries never compare
//     close (|NaN - x| is NaN, and NaN ≤ eps is false).
//
// Inputs:
//   - a, b: conformable matrices (same r×c).
//   - eps : non-negative tolerance; pass DefaultEpsilon when in doubt.
//
// Returns:
//   - bool : true when every cell pair is within eps.
//   - error: validation failures wrapped with opAllClose.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed scan order; identical inputs give identical verdicts.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Primary verification tool for M × M⁻¹ ≈ I style assertions.
func AllClose(a, b Matrix, eps float64) (bool, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	// Normalize tolerance to a non-negative value.
	if eps < 0 {
		eps = -eps
	}

	rows, cols := a.Rows(), a.Cols()

	// Fast-path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // fixed order, first offender wins
				if !(math.Abs(da.data[idx]-db.data[idx]) <= eps) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Fallback: generic interface loop using At (bounds-safe after validation).
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !(math.Abs(av-bv) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
