// SPDX-License-Identifier: MIT
// Package invcache: the compute-or-fetch accessor.

package invcache

import (
	"fmt"

	"github.com/mmcera/matcache/matrix"
)

// opResolve is the operation tag prefixed onto container-level failures.
const opResolve = "ResolveInverse"

// ResolveInverse returns the inverse of the matrix held by c — either
// directly from the cache or by computing it via the container's inversion
// routine and storing the result before returning.
//
// Implementation:
//   - Stage 1: Guard against a nil container; read the cached inverse.
//   - Stage 2: On a hit, emit EventHit and return the cached value as-is.
//   - Stage 3: On a miss, emit EventMiss, invoke the inversion routine on the
//     current matrix forwarding opts verbatim, store the result via
//     SetCachedInverse, and return it.
//
// Behavior highlights:
//   - Hits perform no state change; repeated calls on an unmodified container
//     return the identical Matrix value.
//   - Failures are never cached: the cache stays absent after an error, so
//     the next call retries the full computation from scratch. The failure is
//     deterministic for an unchanged matrix, but no-negative-caching keeps
//     the state machine two-valued (absent/present).
//   - No retries, no recovery: a single failed attempt surfaces to the caller.
//
// Inputs:
//   - c   : the container; must be non-nil.
//   - opts: auxiliary options (e.g. matrix.WithPivotTolerance) forwarded to
//     the underlying inversion routine unmodified.
//
// Returns:
//   - matrix.Matrix: the inverse of c.Matrix().
//   - error        : ErrNilContainer, or whatever the inversion routine
//     raised — matrix.ErrSingular for a singular matrix, matrix.ErrNonSquare
//     for a rectangular one, matrix.ErrNilMatrix for an empty container —
//     propagated unchanged for errors.Is matching at any call depth.
//
// Determinism:
//   - A hit returns the stored value bit-for-bit; a miss inherits the
//     determinism of the configured routine (matrix.Inverse is deterministic).
//
// Complexity:
//   - Hit: O(1). Miss: the routine's cost (O(n³) for matrix.Inverse) + O(1)
//     store.
//
// AI-Hints:
//   - The accessor is not atomic across goroutines; see the package doc
//     before sharing a container.
//   - Pair with WithObserver to assert hit/miss sequences in tests.
func ResolveInverse(c *CacheableMatrix, opts ...matrix.Option) (matrix.Matrix, error) {
	// Guard container-level misuse with the package sentinel.
	if c == nil {
		return nil, resolveErrorf(ErrNilContainer)
	}

	// Cache hit: short-circuit before any compute/store step.
	if inv, ok := c.CachedInverse(); ok {
		c.emit(EventHit) // advisory only; no state change
		return inv, nil
	}

	// Cache miss: compute through the configured routine, options forwarded
	// verbatim. Errors surface unchanged and nothing is cached.
	c.emit(EventMiss)
	inv, err := c.cfg.invert(c.Matrix(), opts...)
	if err != nil {
		return nil, err
	}

	// Populate the cache for subsequent hits, then return.
	c.SetCachedInverse(inv)

	return inv, nil
}

// resolveErrorf wraps a container-level error with the accessor tag while
// preserving errors.Is matching. Inversion errors are intentionally NOT
// wrapped here — they propagate exactly as the routine raised them.
func resolveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opResolve, err)
}
