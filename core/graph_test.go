package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyfare/core"
)

// fixture returns an unsorted flight list covering parallel edges.
func fixture() []core.Flight {
	return []core.Flight{
		{ID: "f3", From: "B", To: "D", Fare: 50},
		{ID: "f1", From: "A", To: "B", Fare: 100},
		{ID: "f2", From: "A", To: "B", Fare: 30}, // parallel to f1
		{ID: "f4", From: "A", To: "C", Fare: 40},
	}
}

func TestNewFlightGraph_DeterministicOrder(t *testing.T) {
	g, err := core.NewFlightGraph(fixture())
	require.NoError(t, err)

	// Flights come back sorted by ID regardless of input order.
	ids := make([]string, 0, g.FlightCount())
	for _, f := range g.Flights() {
		ids = append(ids, f.ID)
	}
	require.Equal(t, []string{"f1", "f2", "f3", "f4"}, ids)

	// Cities are the sorted union of endpoints.
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Cities())
	require.Equal(t, 4, g.CityCount())
	require.Equal(t, 4, g.FlightCount())
}

func TestNewFlightGraph_ParallelFlightsPreserved(t *testing.T) {
	g, err := core.NewFlightGraph(fixture())
	require.NoError(t, err)

	deps, err := g.Departures("A")
	require.NoError(t, err)
	require.Len(t, deps, 3, "both parallel A→B flights and A→C must survive")
}

func TestNewFlightGraph_IsolatedCity(t *testing.T) {
	g, err := core.NewFlightGraph(fixture(), "Z")
	require.NoError(t, err)
	require.True(t, g.HasCity("Z"))

	deps, err := g.Departures("Z")
	require.NoError(t, err)
	require.Empty(t, deps)
}

func TestNewFlightGraph_ValidationErrors(t *testing.T) {
	_, err := core.NewFlightGraph([]core.Flight{{ID: "x", From: "", To: "B", Fare: 1}})
	require.ErrorIs(t, err, core.ErrEmptyCityID)

	_, err = core.NewFlightGraph([]core.Flight{{ID: "", From: "A", To: "B", Fare: 1}})
	require.ErrorIs(t, err, core.ErrEmptyFlightID)

	_, err = core.NewFlightGraph([]core.Flight{
		{ID: "dup", From: "A", To: "B", Fare: 1},
		{ID: "dup", From: "B", To: "C", Fare: 1},
	})
	require.ErrorIs(t, err, core.ErrDuplicateFlightID)

	_, err = core.NewFlightGraph([]core.Flight{{ID: "x", From: "A", To: "A", Fare: 1}})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = core.NewFlightGraph([]core.Flight{{ID: "x", From: "A", To: "B", Fare: -5}})
	require.ErrorIs(t, err, core.ErrNegativeFare)

	_, err = core.NewFlightGraph([]core.Flight{{ID: "x", From: "A", To: "B", Fare: math.NaN()}})
	require.ErrorIs(t, err, core.ErrBadFare)

	_, err = core.NewFlightGraph([]core.Flight{{ID: "x", From: "A", To: "B", Fare: math.Inf(1)}})
	require.ErrorIs(t, err, core.ErrBadFare)
}

func TestFlightGraph_Lookups(t *testing.T) {
	g, err := core.NewFlightGraph(fixture())
	require.NoError(t, err)

	f, err := g.Flight("f2")
	require.NoError(t, err)
	require.Equal(t, core.Flight{ID: "f2", From: "A", To: "B", Fare: 30}, f)

	_, err = g.Flight("nope")
	require.ErrorIs(t, err, core.ErrFlightNotFound)

	arr, err := g.Arrivals("B")
	require.NoError(t, err)
	require.Len(t, arr, 2)

	_, err = g.Departures("nope")
	require.ErrorIs(t, err, core.ErrUnknownCity)
}

func TestFlightGraph_AccessorsReturnCopies(t *testing.T) {
	in := fixture()
	g, err := core.NewFlightGraph(in)
	require.NoError(t, err)

	// Mutating the input slice after construction must not leak into the graph.
	in[0].Fare = 9999
	f, err := g.Flight("f3")
	require.NoError(t, err)
	require.Equal(t, 50.0, f.Fare)

	// Mutating returned slices must not affect subsequent reads.
	fs := g.Flights()
	fs[0].Fare = -1
	again := g.Flights()
	require.Equal(t, 100.0, again[0].Fare)

	cs := g.Cities()
	cs[0] = "mutated"
	require.Equal(t, "A", g.Cities()[0])
}
