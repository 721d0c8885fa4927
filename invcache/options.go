// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for the container.
// This file defines:
//   - Event / EventKind (advisory cache diagnostics),
//   - InverseFunc (the injectable inversion routine),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; New consumes ...Option.
package invcache

import (
	"github.com/apex/log"

	"github.com/mmcera/matcache/matrix"
)

// EventKind discriminates the advisory cache events.
type EventKind int

const (
	// EventHit marks a ResolveInverse call satisfied from the cached inverse,
	// without recomputation.
	EventHit EventKind = iota

	// EventMiss marks a ResolveInverse call that had to invoke the inversion
	// routine because no valid cached value existed.
	EventMiss
)

// String implements fmt.Stringer for diagnostics and log lines.
// Complexity: O(1).
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Event describes one advisory cache observation. Rows/Cols carry the shape
// of the matrix held at event time (both 0 when the container holds nil),
// giving observers context without exposing the matrix itself.
type Event struct {
	Kind EventKind // hit or miss
	Rows int       // rows of the current matrix
	Cols int       // cols of the current matrix
}

// ObserverFunc receives advisory cache events. Observers must not mutate the
// container; they exist for logging, metrics and test hit-counters only.
type ObserverFunc func(Event)

// InverseFunc is the signature of the underlying inversion routine.
// matrix.Inverse satisfies it; tests inject fakes to observe forwarded
// options. The routine receives the variadic options passed to
// ResolveInverse verbatim.
type InverseFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicInverterNil = "invcache: WithInverter: fn must be non-nil"
	panicObserverNil = "invcache: WithObserver: fn must be non-nil"
	panicLoggerNil   = "invcache: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in content to prevent external mutation;
// New accepts `...Option` and internally resolves them via gatherOptions.
type Options struct {
	invert    InverseFunc    // inversion routine; defaults to matrix.Inverse
	observers []ObserverFunc // advisory hit/miss hooks, invoked in order
}

// ---------- Constructors (WithX) ----------

// WithInverter injects the inversion routine the container resolves through.
// Implementation:
//   - Stage 1: validate fn is non-nil.
//   - Stage 2: return a setter that replaces the routine.
//
// Behavior highlights:
//   - Last-writer-wins: applying twice keeps the final routine.
//
// Inputs:
//   - fn: inversion routine; receives ResolveInverse's options verbatim.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Inject a fake in tests to count invocations or capture forwarded
//     options; production code rarely needs anything but the default.
func WithInverter(fn InverseFunc) Option {
	if fn == nil {
		panic(panicInverterNil)
	}

	// Assign validated routine
	return func(o *Options) { o.invert = fn }
}

// WithObserver appends an advisory hit/miss hook.
// Implementation:
//   - Stage 1: validate fn is non-nil.
//   - Stage 2: return a setter that appends fn to the observer list.
//
// Behavior highlights:
//   - Observers accumulate (append, not replace) and fire in registration
//     order, synchronously, on the caller's goroutine.
//
// Inputs:
//   - fn: event consumer; must not mutate the container.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity:
//   - Time O(1), Space O(1) per registration.
//
// AI-Hints:
//   - A closure over a counter is the canonical test hit-counter.
func WithObserver(fn ObserverFunc) Option {
	if fn == nil {
		panic(panicObserverNil)
	}

	// Append validated observer
	return func(o *Options) { o.observers = append(o.observers, fn) }
}

// WithLogger registers an observer that emits one debug line per cache event
// through the given apex/log logger.
// Implementation:
//   - Stage 1: validate l is non-nil.
//   - Stage 2: append an adapter observer formatting Event into fields.
//
// Behavior highlights:
//   - Purely advisory; the log text carries no contract.
//   - Debug level keeps the hot cache-hit path silent under default levels.
//
// Inputs:
//   - l: any apex/log Interface (log.Log, a *log.Logger, or an *log.Entry).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when l is nil.
//
// Complexity:
//   - Time O(1) to register; per-event cost is the handler's.
//
// AI-Hints:
//   - Combine with WithObserver when you need both logs and counters.
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) {
		o.observers = append(o.observers, func(e Event) {
			l.WithField("shape", shapeString(e.Rows, e.Cols)).
				Debugf("inverse cache %s", e.Kind)
		})
	}
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults and
// enforces the one internal invariant: the inversion routine is never nil.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		invert: matrix.Inverse, // canonical routine unless injected
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
