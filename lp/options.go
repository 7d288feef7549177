// File: options.go
// Role: functional configuration for Formulate. Defaults live in
//       Default* constants (single source of truth); setters are pure.

package lp

// DefaultMode is the variable domain used when no option overrides it.
// Binary is the robust choice: integrality by construction, not by
// polytope property. See the package doc for the full trade-off.
const DefaultMode = ModeBinary

// Option mutates the formulation options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Public entry points accept ...Option and resolve via DefaultOptions.
type Options struct {
	// Mode is the decision-variable domain.
	Mode VariableMode
}

// WithBinaryVariables declares every decision variable binary {0,1}.
// This is the default.
func WithBinaryVariables() Option {
	return func(o *Options) { o.Mode = ModeBinary }
}

// WithContinuousRelaxation relaxes every decision variable to [0,1].
// Correct for the baseline model (unit supply, non-negative fares ⇒
// integral optimal vertices) and cheaper on large networks; prefer the
// binary default once capacities or route exclusions enter the model.
func WithContinuousRelaxation() Option {
	return func(o *Options) { o.Mode = ModeContinuous }
}

// DefaultOptions returns the documented defaults; use as the starting
// point for functional-option overrides.
func DefaultOptions() Options {
	return Options{
		Mode: DefaultMode,
	}
}
