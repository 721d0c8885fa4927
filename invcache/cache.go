// SPDX-License-Identifier: MIT
// Package invcache: the CacheableMatrix container.
// The container is deliberately dumb storage: it validates nothing about the
// matrix it holds (shape and invertibility are the caller's responsibility)
// and performs no computation itself. All compute-or-fetch logic lives in
// ResolveInverse (resolve.go).

package invcache

import (
	"fmt"

	"github.com/mmcera/matcache/matrix"
)

// CacheableMatrix holds one matrix value and a lazily computed,
// invalidated-on-write cache of its inverse.
//
// Lifecycle: created by New with the cache absent; mutated by SetMatrix
// (replaces the matrix, clears the cache) and by SetCachedInverse (populates
// the cache; called by ResolveInverse). No explicit destruction.
//
// Zero value: usable but empty (nil matrix, absent cache); prefer New so the
// inversion routine and observers are configured.
type CacheableMatrix struct {
	mat matrix.Matrix // currently represented matrix; may be nil
	inv matrix.Matrix // cached inverse; nil ⇒ absent
	cfg Options       // resolved configuration (routine, observers)
}

// New creates a container holding initial, with the cache absent.
// No validation of shape or invertibility is performed here — an unusable
// matrix simply fails later, at ResolveInverse time.
// Complexity: O(k) for k options; the matrix is referenced, not copied.
func New(initial matrix.Matrix, opts ...Option) *CacheableMatrix {
	return &CacheableMatrix{
		mat: initial,
		cfg: gatherOptions(opts...),
	}
}

// Matrix returns the currently stored matrix. Pure read, no side effects.
// Complexity: O(1).
func (c *CacheableMatrix) Matrix() matrix.Matrix {
	return c.mat
}

// SetMatrix replaces the stored matrix with m and unconditionally clears the
// cached inverse, regardless of whether m differs from the old value. No
// equality check is performed: any call invalidates (conservative "assume it
// may have changed" policy). This is the only path that invalidates.
// Complexity: O(1); the matrix is referenced, not copied.
func (c *CacheableMatrix) SetMatrix(m matrix.Matrix) {
	c.mat = m
	c.inv = nil // invalidate atomically with the replacement
}

// CachedInverse returns the cached inverse and whether it is present.
// Pure read, no side effects; a false second return means absent.
// Complexity: O(1).
func (c *CacheableMatrix) CachedInverse() (matrix.Matrix, bool) {
	return c.inv, c.inv != nil
}

// SetCachedInverse stores inv as the cached inverse, overwriting any previous
// value. The sole correctness-preserving caller is ResolveInverse: writing
// anything that is not the inverse of the current matrix breaks the cache
// invariant for every subsequent read.
// Complexity: O(1).
func (c *CacheableMatrix) SetCachedInverse(inv matrix.Matrix) {
	c.inv = inv
}

// emit delivers an advisory event to every registered observer, in
// registration order, synchronously. Shape fields are zero when the container
// holds no matrix.
func (c *CacheableMatrix) emit(kind EventKind) {
	if len(c.cfg.observers) == 0 {
		return // nothing to notify; keep the hot path allocation-free
	}
	e := Event{Kind: kind}
	// The validator also rejects a typed-nil *Dense, whose Rows/Cols would
	// dereference a nil receiver; such containers report a 0x0 shape and the
	// miss itself fails with ErrNilMatrix.
	if matrix.ValidateNotNil(c.mat) == nil {
		e.Rows, e.Cols = c.mat.Rows(), c.mat.Cols()
	}
	for _, fn := range c.cfg.observers {
		fn(e)
	}
}

// shapeString renders r×c for log fields.
func shapeString(r, c int) string {
	return fmt.Sprintf("%dx%d", r, c)
}
