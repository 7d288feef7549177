// File: formulate.go
// Role: emit the single-unit minimum-cost-flow formulation for a
//       (source, destination) request over an immutable FlightGraph.
// Determinism:
//   - Row order  = graph city order (sorted asc).
//   - Column order = graph flight order (Flight.ID asc).
//   - Entries are emitted column-major, origin mark before destination mark.

package lp

import (
	"fmt"

	"github.com/katalvlaran/skyfare/core"
)

// Incidence marks (no magic numbers): a directed flight column carries
// −1 at its origin row and +1 at its destination row, so the row sum
// "arrivals − departures" at a city is exactly the conservation LHS.
const (
	departMark = -1.0 // at row(From): the flight takes the unit away
	arriveMark = +1.0 // at row(To): the flight delivers the unit
)

// Supply marks for the RHS: one net unit must leave the source and
// arrive at the destination; every other city forwards what it receives.
const (
	rhsSource      = -1.0
	rhsDestination = +1.0
)

// Variable box bounds of the baseline model: a flight is used at most
// once in the selected path.
const (
	flightLowerBound = 0.0
	flightUpperBound = 1.0
)

// Formulate builds the Formulation for the cheapest-route request
// source→destination over graph g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be non-empty (ErrEmptyEndpoint).
//  3. source must differ from destination (ErrSameEndpoint).
//  4. Both endpoints must exist in g's node set (ErrUnknownCity).
//
// The returned Formulation is freshly allocated and shares no state
// with g; Formulate is pure and safe for concurrent use.
//
// Complexity: O(C + F) time and space for C cities and F flights.
func Formulate(g *core.FlightGraph, source, destination string, opts ...Option) (*Formulation, error) {
	// 1) Resolve options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validation ladder.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" || destination == "" {
		return nil, ErrEmptyEndpoint
	}
	if source == destination {
		return nil, fmt.Errorf("%w: %q", ErrSameEndpoint, source)
	}
	if !g.HasCity(source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownCity, source)
	}
	if !g.HasCity(destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrUnknownCity, destination)
	}

	// 3) Freeze row order and build the city→row index.
	cities := g.Cities()
	rowOf := make(map[string]int, len(cities))
	var (
		c string
		i int
	)
	for i, c = range cities {
		rowOf[c] = i
	}

	// 4) Freeze column order; emit objective, entries, and bounds in one pass.
	flights := g.Flights()
	f := &Formulation{
		Source:      source,
		Destination: destination,
		Cities:      cities,
		FlightIDs:   make([]string, len(flights)),
		Objective:   make([]float64, len(flights)),
		Entries:     make([]Entry, 0, 2*len(flights)),
		RHS:         make([]float64, len(cities)),
		LowerBound:  make([]float64, len(flights)),
		UpperBound:  make([]float64, len(flights)),
		Mode:        cfg.Mode,
	}
	var fl core.Flight
	for i, fl = range flights {
		f.FlightIDs[i] = fl.ID
		f.Objective[i] = fl.Fare
		f.Entries = append(f.Entries,
			Entry{Row: rowOf[fl.From], Col: i, Coef: departMark},
			Entry{Row: rowOf[fl.To], Col: i, Coef: arriveMark},
		)
		f.LowerBound[i] = flightLowerBound
		f.UpperBound[i] = flightUpperBound
	}

	// 5) Place the unit supply and demand.
	f.RHS[rowOf[source]] = rhsSource
	f.RHS[rowOf[destination]] = rhsDestination

	return f, nil
}
