// Package core defines the central Flight and FlightGraph types for
// minimum-fare itinerary optimization.
//
// A FlightGraph is a directed weighted multigraph: cities are nodes,
// flights are edges, fares are non-negative float64 weights. Parallel
// flights between the same pair of cities are always preserved as
// distinct edges — fare minimization must be able to choose the
// cheapest of several priced options, and merging would silently
// discard that choice.
//
// Unlike a general mutable graph, a FlightGraph is built exactly once
// per optimization request and is read-only thereafter. Immutability is
// the whole concurrency story: a built graph may be shared across
// goroutines with no locks.
//
// This file declares Flight, the sentinel errors, and the FlightGraph
// storage; constructors and accessors live in graph.go.
//
// Errors:
//
//	ErrEmptyCityID       - a flight names an empty origin or destination.
//	ErrEmptyFlightID     - a flight carries an empty identifier.
//	ErrDuplicateFlightID - two flights share the same identifier.
//	ErrSelfLoop          - a flight departs and arrives at the same city.
//	ErrNegativeFare      - a flight carries a negative fare.
//	ErrBadFare           - a fare is NaN or ±Inf.
//	ErrFlightNotFound    - a lookup referenced an unknown flight ID.
//	ErrUnknownCity       - a lookup referenced a city absent from the graph.
package core

import "errors"

// Sentinel errors for flight-graph construction and queries.
var (
	// ErrEmptyCityID indicates a flight with an empty origin or destination city.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrEmptyFlightID indicates a flight with an empty identifier.
	ErrEmptyFlightID = errors.New("core: flight ID is empty")

	// ErrDuplicateFlightID indicates two flights carrying the same identifier.
	ErrDuplicateFlightID = errors.New("core: duplicate flight ID")

	// ErrSelfLoop indicates a flight whose origin equals its destination.
	// A self-loop is never a valid flight leg.
	ErrSelfLoop = errors.New("core: flight origin equals destination")

	// ErrNegativeFare indicates a flight with a negative fare.
	ErrNegativeFare = errors.New("core: negative fare")

	// ErrBadFare indicates a fare that is NaN or infinite.
	ErrBadFare = errors.New("core: fare is not a finite number")

	// ErrFlightNotFound indicates a lookup for a non-existent flight ID.
	ErrFlightNotFound = errors.New("core: flight not found")

	// ErrUnknownCity indicates a lookup for a city absent from the graph.
	ErrUnknownCity = errors.New("core: city not found in graph")
)

// Flight represents one directed scheduled flight: a single edge of the
// fare network.
//
// ID uniquely identifies the flight within its FlightGraph and is the
// traceability handle from a decoded itinerary back to the input record.
type Flight struct {
	// ID is the unique identifier for this flight.
	ID string

	// From is the origin city.
	From string

	// To is the destination city.
	To string

	// Fare is the non-negative ticket price of this flight.
	Fare float64
}

// FlightGraph is the immutable in-memory flight network.
//
// The city set is derived from the union of all flight endpoints, plus
// any explicitly declared isolated cities (cities known to the schedule
// but with no incident flights). All exported accessors return copies
// in deterministic order, so callers can never mutate internal state
// and identical graphs always enumerate identically.
type FlightGraph struct {
	// flights holds all edges sorted by Flight.ID asc.
	flights []Flight

	// byID maps Flight.ID → index into flights.
	byID map[string]int

	// cities holds all city IDs sorted asc.
	cities []string

	// citySet is the membership index for HasCity.
	citySet map[string]struct{}

	// out maps city → indices of departing flights (sorted by Flight.ID asc).
	out map[string][]int

	// in maps city → indices of arriving flights (sorted by Flight.ID asc).
	in map[string][]int
}
