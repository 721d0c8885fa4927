// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization/inversion kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultPivotTolerance is the threshold below which a pivot magnitude is
	// treated as zero during LU/Inverse. The default of 0 preserves the strict
	// exact-zero guard: only a pivot that is literally 0.0 trips ErrSingular.
	// Raise it to detect near-singular inputs (linearly dependent columns that
	// survive exact arithmetic only through rounding noise).
	DefaultPivotTolerance = 0.0

	// DefaultEpsilon defines the non-negative tolerance used by AllClose-style
	// numeric comparisons when the caller does not supply one.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// PivotTolerance returns the resolved pivot threshold.
// Exposed read-only so injected routines (and tests) can observe the policy
// they were handed without access to unexported fields.
// Complexity: O(1).
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity threshold tol used by LU/Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - A pivot p with |p| ≤ tol aborts factorization with ErrSingular.
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - tol: non-negative finite threshold.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - tol = 0 (the default) keeps the deterministic exact-zero guard.
//
// AI-Hints:
//   - For noisy double-precision data, tol around 1e-12..1e-9 catches columns
//     that are dependent up to rounding; keep 0 for reproducibility tests.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the documented defaults (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - opts: zero or more functional setters.
//
// Returns:
//   - Options: internal struct with effective configuration.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
//
// AI-Hints:
//   - Compose options close to the kernel call-site for clarity.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all kernels.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		// numeric policy
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
