// Package itinerary turns solver output back into travel plans.
//
// The pipeline upstream speaks in matrices: one variable per flight, one
// balance row per city. This package closes the loop. Decode reads the
// variable vector of a solved formulation, keeps the flights the optimizer
// selected, and verifies they chain into a single simple path from the
// requested source to the requested destination. Cheapest and
// CheapestFromRecords bundle the whole journey — formulate, solve, decode —
// behind one call.
//
// What can go wrong:
//
//   - ✘ ErrInfeasibleRoute — no sequence of flights connects the endpoints.
//   - ✘ ErrDegenerateSolution — the solver returned values that do not
//     describe one clean unit path (fractional flow, split departures,
//     detached cycles). Seen in practice only with the continuous
//     relaxation on adversarial inputs; the binary mode rules it out.
//   - ✘ ErrSolverStatus — the engine itself failed or was canceled.
package itinerary

import (
	"errors"

	"github.com/katalvlaran/skyfare/core"
)

var (
	// ErrNilGraph is returned when a nil *core.FlightGraph is supplied.
	ErrNilGraph = errors.New("itinerary: nil flight graph")

	// ErrNilFormulation is returned when Decode receives a nil formulation.
	ErrNilFormulation = errors.New("itinerary: nil formulation")

	// ErrNilResult is returned when Decode receives a nil solver result.
	ErrNilResult = errors.New("itinerary: nil solver result")

	// ErrDimensionMismatch is returned when the result's value vector does
	// not align with the formulation's flight columns.
	ErrDimensionMismatch = errors.New("itinerary: result does not match formulation")

	// ErrEmptyEndpoint is returned when source or destination is "".
	ErrEmptyEndpoint = errors.New("itinerary: empty source or destination")

	// ErrSameEndpoint is returned when source equals destination.
	ErrSameEndpoint = errors.New("itinerary: source equals destination")

	// ErrInfeasibleRoute is returned when no itinerary connects the
	// requested source to the requested destination.
	ErrInfeasibleRoute = errors.New("itinerary: no route between endpoints")

	// ErrDegenerateSolution is returned when the solved values do not
	// describe exactly one unit path between the endpoints.
	ErrDegenerateSolution = errors.New("itinerary: solution is not a single unit path")

	// ErrSolverStatus is returned when the solver reports a status the
	// decoder cannot interpret as a route (engine failure, cancellation,
	// unbounded model).
	ErrSolverStatus = errors.New("itinerary: solver did not produce a usable solution")
)

// Itinerary is a decoded travel plan: the selected flights in boarding
// order, plus their summed fare.
type Itinerary struct {
	// Flights lists the legs from source to destination, in order.
	Flights []core.Flight

	// TotalFare is the sum of the listed flights' fares.
	TotalFare float64
}

// FlightIDs returns the leg identifiers in boarding order.
func (it *Itinerary) FlightIDs() []string {
	ids := make([]string, len(it.Flights))
	for i, f := range it.Flights {
		ids[i] = f.ID
	}

	return ids
}
