// Package invcache memoizes the inverse of a single square matrix.
//
// The pattern is a stateful container plus a compute-or-fetch accessor:
//
//   - CacheableMatrix owns one matrix value and an optional cached inverse.
//     Replacing the matrix through SetMatrix unconditionally discards the
//     cached inverse — no equality check is performed, any call invalidates
//     (conservative "assume it may have changed" policy). That setter is the
//     only invalidation path.
//   - ResolveInverse returns the cached inverse when present (a cache hit),
//     otherwise computes it through the container's inversion routine,
//     stores it, and returns it (a cache miss). Failed computations are never
//     cached: a singular or non-square matrix fails identically on every call
//     until the matrix is replaced.
//
// Invariant: whenever the cached inverse is present, it is exactly the
// inverse of the current matrix as computed by the configured routine.
// SetCachedInverse is declared public to keep the container's surface
// symmetric, but the sole correctness-preserving caller is ResolveInverse.
//
// Diagnostics are advisory: WithObserver injects a hit/miss hook (handy as a
// test hit-counter) and WithLogger emits apex/log debug lines. No contract
// depends on either.
//
// Concurrency: none. The read-check-compute-store sequence in ResolveInverse
// is not atomic; two goroutines racing on a miss would both compute the same
// inverse (wasted work, not corruption — the stored values are identical).
// Guard the container with your own mutex if you must share it.
package invcache
