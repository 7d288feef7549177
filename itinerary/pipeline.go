// pipeline.go — one-call wiring of formulate → solve → decode.
package itinerary

import (
	"fmt"

	"github.com/katalvlaran/skyfare/builder"
	"github.com/katalvlaran/skyfare/core"
	"github.com/katalvlaran/skyfare/lp"
	"github.com/katalvlaran/skyfare/solver"
)

// Cheapest finds the minimum-total-fare itinerary from source to
// destination over g.
//
// The route is modeled as a single-unit minimum-cost flow: Formulate
// builds one variable per flight and one balance row per city, the solver
// pushes one unit from source to destination, and Decode reads the selected
// flights back in boarding order. Options tune the variable mode, the zero
// threshold, and the solver; by default a binary-mode solver.Simplex bound
// to the option context is used.
//
// Endpoint validation errors surface from the formulation step; an
// unreachable destination surfaces as ErrInfeasibleRoute.
func Cheapest(g *core.FlightGraph, source, destination string, opts ...Option) (*Itinerary, error) {
	o := applyOptions(opts)

	// 1) Formulate with the requested variable mode.
	mode := lp.WithBinaryVariables()
	if o.Mode == lp.ModeContinuous {
		mode = lp.WithContinuousRelaxation()
	}
	f, err := lp.Formulate(g, source, destination, mode)
	if err != nil {
		return nil, fmt.Errorf("itinerary: %w", err)
	}

	// 2) Solve, constructing the default engine on demand.
	s := o.Solver
	if s == nil {
		s = solver.NewSimplex(solver.WithContext(o.Ctx))
	}
	res, err := s.Solve(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverStatus, err)
	}

	// 3) Decode, forwarding the epsilon threshold.
	return Decode(g, source, destination, f, res, WithEpsilon(o.Epsilon))
}

// CheapestFromRecords builds the flight graph from raw fare records and
// then runs Cheapest. Record validation errors surface unchanged from the
// builder package.
func CheapestFromRecords(records []builder.Record, source, destination string, opts ...Option) (*Itinerary, error) {
	g, err := builder.Build(records)
	if err != nil {
		return nil, err
	}

	return Cheapest(g, source, destination, opts...)
}
