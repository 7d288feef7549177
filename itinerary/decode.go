// decode.go — reconstruct a boarding-order path from a solved formulation.
package itinerary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skyfare/core"
	"github.com/katalvlaran/skyfare/lp"
	"github.com/katalvlaran/skyfare/solver"
)

// Decode reads a solved formulation back into an Itinerary.
//
// The result's value vector is aligned with f.FlightIDs: entry j is the
// flow pushed over flight j. Decode keeps every flight whose value exceeds
// the epsilon threshold, demands each kept value be a full unit, and walks
// the kept flights from source to destination requiring exactly one
// departure per visited city. Anything else — fractional flow, forked
// departures, revisits, kept flights left over after arrival — is reported
// as ErrDegenerateSolution with a reason.
//
// Non-optimal statuses map to errors before any value is read:
// StatusInfeasible to ErrInfeasibleRoute, everything else to
// ErrSolverStatus.
//
// Complexity: O(V + K) for K kept flights after an O(n) scan of the values.
func Decode(g *core.FlightGraph, source, destination string, f *lp.Formulation, res *solver.Result, opts ...Option) (*Itinerary, error) {
	o := applyOptions(opts)

	// 1) Validate inputs before touching any value.
	if g == nil {
		return nil, ErrNilGraph
	}
	if f == nil {
		return nil, ErrNilFormulation
	}
	if res == nil {
		return nil, ErrNilResult
	}
	if source == "" || destination == "" {
		return nil, ErrEmptyEndpoint
	}
	if source == destination {
		return nil, ErrSameEndpoint
	}

	// 2) Map solver status. Only an optimal result carries a route.
	switch res.Status {
	case solver.StatusOptimal:
		// proceed
	case solver.StatusInfeasible:
		return nil, fmt.Errorf("%w: %s -> %s", ErrInfeasibleRoute, source, destination)
	default:
		return nil, fmt.Errorf("%w: status %s", ErrSolverStatus, res.Status)
	}

	if len(res.Values) != len(f.FlightIDs) {
		return nil, fmt.Errorf("%w: %d values for %d flights",
			ErrDimensionMismatch, len(res.Values), len(f.FlightIDs))
	}

	// 3) Keep flights with meaningful flow; each must carry a full unit.
	next := make(map[string]core.Flight, len(f.FlightIDs))
	kept := 0
	for j, v := range res.Values {
		if math.Abs(v) <= o.Epsilon {
			continue
		}
		if math.Abs(v-1) > o.Epsilon {
			return nil, fmt.Errorf("%w: flight %s carries fractional flow %.6g",
				ErrDegenerateSolution, f.FlightIDs[j], v)
		}

		fl, err := g.Flight(f.FlightIDs[j])
		if err != nil {
			return nil, fmt.Errorf("itinerary: %w", err)
		}
		if _, dup := next[fl.From]; dup {
			return nil, fmt.Errorf("%w: two selected departures from %s",
				ErrDegenerateSolution, fl.From)
		}
		next[fl.From] = fl
		kept++
	}
	if kept == 0 {
		// An optimal status with zero kept flights means the model did not
		// actually route a unit; treat it as degenerate, not as "no route".
		return nil, fmt.Errorf("%w: no flight selected", ErrDegenerateSolution)
	}

	// 4) Walk the unique-departure chain from source to destination.
	legs := make([]core.Flight, 0, kept)
	seen := map[string]bool{source: true}
	total := 0.0
	city := source
	for city != destination {
		fl, ok := next[city]
		if !ok {
			return nil, fmt.Errorf("%w: chain breaks at %s", ErrDegenerateSolution, city)
		}
		if seen[fl.To] {
			return nil, fmt.Errorf("%w: city %s visited twice", ErrDegenerateSolution, fl.To)
		}
		seen[fl.To] = true
		legs = append(legs, fl)
		total += fl.Fare
		city = fl.To
	}

	// 5) Every kept flight must lie on the walked path; leftovers are
	//    detached cycles carrying flow the objective never priced out.
	if len(legs) != kept {
		return nil, fmt.Errorf("%w: %d selected flights off the %d-leg path",
			ErrDegenerateSolution, kept-len(legs), len(legs))
	}

	return &Itinerary{Flights: legs, TotalFare: total}, nil
}
