// SPDX-License-Identifier: MIT
// Package invcache: sentinel error set.
// Semantic failures of the inversion itself (ErrSingular, ErrNonSquare,
// ErrNilMatrix) belong to the matrix package and propagate through
// ResolveInverse unchanged; only container-level misuse is reported here.

package invcache

import "errors"

// ErrNilContainer indicates that a nil *CacheableMatrix was passed to
// ResolveInverse. Matched via errors.Is.
var ErrNilContainer = errors.New("invcache: nil container")
