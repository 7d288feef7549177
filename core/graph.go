// File: graph.go
// Role: FlightGraph construction and read-only queries.
// Determinism:
//   - Flights() returns flights sorted by Flight.ID asc.
//   - Cities() returns city IDs sorted asc.
//   - Departures()/Arrivals() follow Flight.ID asc order.
// Concurrency:
//   - No locks: a FlightGraph is immutable after NewFlightGraph returns.

package core

import (
	"fmt"
	"math"
	"sort"
)

// NewFlightGraph validates flights, derives the city set, and returns an
// immutable FlightGraph. Extra city IDs (cities present in the schedule
// but with no incident flights) may be declared via cities; duplicates
// with derived cities are harmless.
//
// Validation (per flight, fail fast with the offending flight in context):
//  1. From and To must be non-empty (ErrEmptyCityID).
//  2. ID must be non-empty (ErrEmptyFlightID) and unique (ErrDuplicateFlightID).
//  3. From must differ from To (ErrSelfLoop).
//  4. Fare must be finite (ErrBadFare) and non-negative (ErrNegativeFare).
//
// The input slice is copied; later mutation of the caller's slice does
// not affect the graph.
//
// Complexity: O(F log F + C log C) for F flights and C cities.
func NewFlightGraph(flights []Flight, cities ...string) (*FlightGraph, error) {
	// 1) Copy and validate every flight before touching any index.
	fs := make([]Flight, len(flights))
	copy(fs, flights)

	seen := make(map[string]struct{}, len(fs))
	var f Flight
	for _, f = range fs {
		if f.From == "" || f.To == "" {
			return nil, fmt.Errorf("%w: flight %q", ErrEmptyCityID, f.ID)
		}
		if f.ID == "" {
			return nil, fmt.Errorf("%w: %s→%s", ErrEmptyFlightID, f.From, f.To)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFlightID, f.ID)
		}
		seen[f.ID] = struct{}{}
		if f.From == f.To {
			return nil, fmt.Errorf("%w: flight %q at %q", ErrSelfLoop, f.ID, f.From)
		}
		if math.IsNaN(f.Fare) || math.IsInf(f.Fare, 0) {
			return nil, fmt.Errorf("%w: flight %q fare=%v", ErrBadFare, f.ID, f.Fare)
		}
		if f.Fare < 0 {
			return nil, fmt.Errorf("%w: flight %q fare=%g", ErrNegativeFare, f.ID, f.Fare)
		}
	}

	// 2) Deterministic edge order: Flight.ID asc.
	sort.Slice(fs, func(i, j int) bool { return fs[i].ID < fs[j].ID })

	// 3) Derive the city set and adjacency in one pass over sorted flights.
	g := &FlightGraph{
		flights: fs,
		byID:    make(map[string]int, len(fs)),
		citySet: make(map[string]struct{}),
		out:     make(map[string][]int),
		in:      make(map[string][]int),
	}
	var i int
	for i, f = range fs {
		g.byID[f.ID] = i
		g.citySet[f.From] = struct{}{}
		g.citySet[f.To] = struct{}{}
		g.out[f.From] = append(g.out[f.From], i)
		g.in[f.To] = append(g.in[f.To], i)
	}

	// 4) Fold in explicitly declared isolated cities.
	var c string
	for _, c = range cities {
		if c == "" {
			return nil, ErrEmptyCityID
		}
		g.citySet[c] = struct{}{}
	}

	// 5) Freeze the sorted city list.
	g.cities = make([]string, 0, len(g.citySet))
	for c = range g.citySet {
		g.cities = append(g.cities, c)
	}
	sort.Strings(g.cities)

	return g, nil
}

// Cities returns all city IDs sorted asc. The returned slice is a copy.
// Complexity: O(C).
func (g *FlightGraph) Cities() []string {
	out := make([]string, len(g.cities))
	copy(out, g.cities)

	return out
}

// Flights returns all flights sorted by Flight.ID asc. The returned
// slice is a copy; Flight values are plain data and safe to retain.
// Complexity: O(F).
func (g *FlightGraph) Flights() []Flight {
	out := make([]Flight, len(g.flights))
	copy(out, g.flights)

	return out
}

// HasCity reports whether the city appears in the graph's node set.
// Complexity: O(1).
func (g *FlightGraph) HasCity(city string) bool {
	_, ok := g.citySet[city]

	return ok
}

// Flight returns the flight with the given ID, or ErrFlightNotFound.
// Complexity: O(1).
func (g *FlightGraph) Flight(id string) (Flight, error) {
	i, ok := g.byID[id]
	if !ok {
		return Flight{}, fmt.Errorf("%w: %q", ErrFlightNotFound, id)
	}

	return g.flights[i], nil
}

// Departures returns all flights departing from city, sorted by
// Flight.ID asc. Unknown cities yield ErrUnknownCity; a known city with
// no departures yields an empty slice.
// Complexity: O(deg⁺(city)).
func (g *FlightGraph) Departures(city string) ([]Flight, error) {
	if !g.HasCity(city) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	idx := g.out[city]
	out := make([]Flight, len(idx))
	for k, i := range idx {
		out[k] = g.flights[i]
	}

	return out, nil
}

// Arrivals returns all flights arriving at city, sorted by Flight.ID
// asc. Unknown cities yield ErrUnknownCity.
// Complexity: O(deg⁻(city)).
func (g *FlightGraph) Arrivals(city string) ([]Flight, error) {
	if !g.HasCity(city) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	idx := g.in[city]
	out := make([]Flight, len(idx))
	for k, i := range idx {
		out[k] = g.flights[i]
	}

	return out, nil
}

// CityCount returns the number of cities. Complexity: O(1).
func (g *FlightGraph) CityCount() int { return len(g.cities) }

// FlightCount returns the number of flights. Complexity: O(1).
func (g *FlightGraph) FlightCount() int { return len(g.flights) }
