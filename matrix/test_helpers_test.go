// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/mmcera/matcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Embedding matrix.Matrix forwards all methods while preventing the "*Dense"
// fast-path type switch in the code under test, forcing the fallback path.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one
//     *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
// Concise boilerplate reduction; subsequent steps may assume non-nil Dense.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from rectangular rows or fails the test.
// The canonical way tests construct literal fixtures.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustIdentity RETURNS an n×n identity matrix or fails the test.
// Great as a baseline for inverse verification.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// MustAt READS m(i,j) or fails the test. Keeps assertions one-liners.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// AssertAllClose FAILS the test unless |a-b| ≤ eps cell-wise.
// Delegates to the package kernel so the verification path is itself tested.
func AssertAllClose(t *testing.T, a, b matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, eps)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond eps=%g:\na=%v\nb=%v", eps, a, b)
	}
}
