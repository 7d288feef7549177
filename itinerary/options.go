package itinerary

import (
	"context"
	"math"

	"github.com/katalvlaran/skyfare/lp"
	"github.com/katalvlaran/skyfare/solver"
)

// DefaultEpsilon is the threshold under which a variable value is treated
// as zero when reading a solution. It must sit well above the solver's
// numeric tolerance and well below 1.
const DefaultEpsilon = 1e-6

const (
	panicBadEpsilon = "itinerary: epsilon must be finite and in (0, 0.5)"
	panicNilSolver  = "itinerary: solver must be non-nil"
	panicNilContext = "itinerary: context must be non-nil"
)

// Options configures decoding and the Cheapest pipeline.
// Construct via DefaultOptions and adjust with With* helpers.
type Options struct {
	// Epsilon is the zero threshold for selected-flight detection.
	Epsilon float64

	// Mode selects binary variables or the continuous relaxation when the
	// pipeline formulates the model. Decode ignores it.
	Mode lp.VariableMode

	// Solver runs the model. Nil means a default solver.Simplex wired to
	// Ctx is constructed per call.
	Solver solver.Solver

	// Ctx bounds the default solver's work. Ignored when Solver is set.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon overrides the zero threshold.
// Panics if eps is not finite or lies outside (0, 0.5).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 || eps >= 0.5 {
		panic(panicBadEpsilon)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithVariableMode selects how the pipeline formulates flight variables.
func WithVariableMode(mode lp.VariableMode) Option {
	return func(o *Options) { o.Mode = mode }
}

// WithSolver injects a solver implementation.
// Panics if s is nil.
func WithSolver(s solver.Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *Options) { o.Solver = s }
}

// WithContext bounds the default solver's work.
// Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the baseline configuration: DefaultEpsilon,
// binary variables, no injected solver, background context.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Mode:    lp.DefaultMode,
		Ctx:     context.Background(),
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
