// File: options.go
// Role: functional configuration for the Simplex adapter. Defaults live
//       in Default* constants; option constructors panic on nonsensical
//       values (programmer error), never at solve time.

package solver

import (
	"context"
	"math"
)

const (
	// DefaultTolerance is the numeric tolerance used by the presolve
	// (rank detection, consistency checks) and handed to the engine.
	DefaultTolerance = 1e-9

	// DefaultMaxNodes caps the branch-and-bound search. Unit-flow path
	// models are integral at the relaxation optimum, so real searches
	// finish in a handful of nodes; the cap is a safety valve against
	// modeling defects, not a tuning knob.
	DefaultMaxNodes = 4096
)

// Internal panic messages (no magic strings).
const (
	panicNilContext   = "solver: WithContext: ctx must be non-nil"
	panicBadTolerance = "solver: WithTolerance: tol must be finite and positive"
	panicBadMaxNodes  = "solver: WithMaxNodes: n must be positive"
)

// Option mutates the adapter options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective adapter configuration.
//
// Ctx      – optional context; a deadline there is the adapter's one
//            cancellation point.
// Tol      – numeric tolerance for presolve and the engine.
// MaxNodes – branch-and-bound node budget for binary formulations.
type Options struct {
	Ctx      context.Context
	Tol      float64
	MaxNodes int
}

// WithContext attaches a context to every solve made through the
// adapter. Cancellation is observed between presolve, the relaxation
// solve, and branch-and-bound nodes — a single engine iteration is not
// interruptible — and surfaces as StatusError wrapping ctx.Err().
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.Ctx = ctx }
}

// WithTolerance overrides the numeric tolerance. Must be finite and
// positive; zero or negative values would turn every rank decision
// into noise.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicBadTolerance)
	}

	return func(o *Options) { o.Tol = tol }
}

// WithMaxNodes overrides the branch-and-bound node budget.
func WithMaxNodes(n int) Option {
	if n <= 0 {
		panic(panicBadMaxNodes)
	}

	return func(o *Options) { o.MaxNodes = n }
}

// DefaultOptions returns production-safe defaults:
//   - Ctx:      context.Background()
//   - Tol:      DefaultTolerance
//   - MaxNodes: DefaultMaxNodes
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Tol:      DefaultTolerance,
		MaxNodes: DefaultMaxNodes,
	}
}
