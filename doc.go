// Package matcache is a small memoizing layer for expensive, deterministic
// linear-algebra results — compute a matrix inverse once, reuse it until the
// matrix changes.
//
// 🚀 What is matcache?
//
//	A focused, dependency-light library that brings together:
//		• Dense primitives: bounds-checked float64 matrices with deep cloning
//		• Inversion kernel: deterministic Doolittle LU + triangular solves
//		• Numeric policy: explicit pivot tolerance via functional options
//		• CacheableMatrix: one matrix, one lazily computed inverse
//		• ResolveInverse: compute-or-fetch with write-through invalidation
//
// ✨ Why choose matcache?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no pivoting, reproducible results
//   - Observable – injectable hit/miss hooks, optional structured logging
//   - Honest errors – sentinel values matched with errors.Is, never panics
//     on user input
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — Dense storage, validators and the LU/Inverse kernels
//	invcache/ — the CacheableMatrix container and ResolveInverse accessor
//
// Quick sketch:
//
//	    M ──construct──▶ CacheableMatrix ──ResolveInverse──▶ M⁻¹ (cached)
//	                          │
//	                      SetMatrix ──▶ cache invalidated
//
// The container is single-threaded by contract: the read-check-compute-store
// sequence is not atomic, so share it across goroutines only behind your own
// synchronization.
//
//	go get github.com/mmcera/matcache
package matcache
