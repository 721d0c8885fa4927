// Package matrix offers dense float64 storage and the deterministic
// factorization kernels behind the inverse cache.
//
// The matrix package provides:
//
//   - Dense: a bounds-checked, row-major Matrix implementation with deep
//     cloning and rectangular [][]float64 ingestion.
//   - LU / Inverse: Doolittle factorization without pivoting plus
//     column-by-column inversion, with a configurable pivot tolerance
//     (WithPivotTolerance) for near-singular detection.
//   - Mul / Sub / AllClose: the kernels needed to build and verify inverses
//     (M × M⁻¹ ≈ I within a tolerance).
//
// All kernels validate fail-fast through central validators, report failures
// as package sentinels matched with errors.Is (ErrSingular, ErrNonSquare,
// ErrDimensionMismatch, ...), and keep fixed loop orders so identical inputs
// always produce identical outputs. Pass *Dense operands to unlock flat-slice
// fast-paths; any other Matrix implementation falls back to At/Set.
//
// See the examples in this package and invcache for usage patterns.
package matrix
