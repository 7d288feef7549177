// Package lp builds the linear (or mixed-integer) program whose
// feasible region encodes "valid simple paths through the flight
// network" via flow conservation.
//
// For a FlightGraph with C cities and F flights, the formulation is the
// standard single-unit minimum-cost flow:
//
//	minimize   Σ fare(f)·x_f                        over all flights f
//	subject to Σ x_f (arrive at c) − Σ x_f (depart from c) = b(c)
//	           b(source) = −1, b(destination) = +1, b(·) = 0 otherwise
//	           0 ≤ x_f ≤ 1
//
// The constraint matrix is the signed incidence matrix of the directed
// multigraph laid out one row per city, one column per flight: −1 at
// the origin row, +1 at the destination row.
//
// Relaxation vs. binary:
//
// With unit supply/demand and non-negative fares, the LP relaxation's
// polytope has integral optimal vertices, so a continuous solve already
// yields a genuine 0/1 path. The formulation nevertheless defaults to
// binary variables: integrality then no longer rests on a polytope
// property, and future tightenings (capacities, banned routes) that
// would break integrality stay safe. The chosen mode is exposed on the
// Formulation because the decoder's degeneracy handling differs.
//
// Errors (sentinel):
//
//	ErrNilGraph      - nil *core.FlightGraph.
//	ErrEmptyEndpoint - source or destination is the empty string.
//	ErrUnknownCity   - an endpoint is absent from the graph's node set.
//	ErrSameEndpoint  - source equals destination (a zero-leg itinerary
//	                   has no meaning for a fare search; rejected up
//	                   front rather than decoded as degenerate).
package lp

import "errors"

// Sentinel errors returned by Formulate.
var (
	// ErrNilGraph indicates that a nil *core.FlightGraph was passed to Formulate.
	ErrNilGraph = errors.New("lp: flight graph is nil")

	// ErrEmptyEndpoint indicates an empty source or destination city ID.
	ErrEmptyEndpoint = errors.New("lp: source or destination city ID is empty")

	// ErrUnknownCity indicates a requested endpoint absent from the graph.
	ErrUnknownCity = errors.New("lp: city not found in graph")

	// ErrSameEndpoint indicates source == destination.
	ErrSameEndpoint = errors.New("lp: source equals destination")
)

// VariableMode selects the domain of the decision variables.
type VariableMode int

const (
	// ModeBinary declares every x_f ∈ {0,1} (mixed-integer formulation).
	// This is the default; see the package doc for the trade-off.
	ModeBinary VariableMode = iota

	// ModeContinuous relaxes every x_f to the interval [0,1].
	ModeContinuous
)

// String renders the mode for error messages and logs.
func (m VariableMode) String() string {
	switch m {
	case ModeBinary:
		return "binary"
	case ModeContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Entry is one non-zero coefficient of the sparse constraint matrix.
type Entry struct {
	// Row is the city-row index (into Cities).
	Row int

	// Col is the flight-column index (into FlightIDs).
	Col int

	// Coef is −1 (flight departs the row's city) or +1 (flight arrives).
	Coef float64
}

// Formulation is the complete LP/MILP emitted by Formulate. It is the
// sole input of a Solver Adapter and carries no vendor-specific shape:
// objective vector, sparse equality rows, box bounds, integrality mode.
type Formulation struct {
	// Source and Destination echo the requested endpoints.
	Source, Destination string

	// Cities is the constraint-row order (graph city order, sorted asc).
	Cities []string

	// FlightIDs is the variable-column order (graph flight order, ID asc).
	FlightIDs []string

	// Objective holds one fare per column, aligned with FlightIDs.
	Objective []float64

	// Entries holds the sparse conservation matrix, column-major:
	// two entries per flight (−1 at origin row, +1 at destination row).
	Entries []Entry

	// RHS holds b(c) per row: −1 at the source row, +1 at the
	// destination row, 0 elsewhere.
	RHS []float64

	// LowerBound and UpperBound are the per-variable box bounds
	// (0 and 1 for every flight in the baseline model; a future
	// capacity extension is an UpperBound change only).
	LowerBound, UpperBound []float64

	// Mode records whether variables are binary or continuous.
	Mode VariableMode
}

// NumVariables returns the number of decision variables (columns).
func (f *Formulation) NumVariables() int { return len(f.FlightIDs) }

// NumConstraints returns the number of conservation rows.
func (f *Formulation) NumConstraints() int { return len(f.Cities) }
