package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyfare/core"
	"github.com/katalvlaran/skyfare/itinerary"
	"github.com/katalvlaran/skyfare/lp"
	"github.com/katalvlaran/skyfare/solver"
)

// diamondFixture: A→B→D and A→C→D, with the C branch cheaper.
func diamondFixture(t *testing.T) (*core.FlightGraph, *lp.Formulation) {
	t.Helper()
	g, err := core.NewFlightGraph([]core.Flight{
		{ID: "AB", From: "A", To: "B", Fare: 100},
		{ID: "AC", From: "A", To: "C", Fare: 40},
		{ID: "BD", From: "B", To: "D", Fare: 50},
		{ID: "CD", From: "C", To: "D", Fare: 40},
	})
	require.NoError(t, err)
	f, err := lp.Formulate(g, "A", "D")
	require.NoError(t, err)

	return g, f
}

func optimal(values []float64, obj float64) *solver.Result {
	return &solver.Result{Status: solver.StatusOptimal, Values: values, Objective: obj}
}

func TestDecode_HappyPath(t *testing.T) {
	g, f := diamondFixture(t)

	// Columns follow sorted flight IDs: AB, AC, BD, CD.
	it, err := itinerary.Decode(g, "A", "D", f, optimal([]float64{0, 1, 0, 1}, 80))
	require.NoError(t, err)
	require.Equal(t, []string{"AC", "CD"}, it.FlightIDs())
	require.InDelta(t, 80.0, it.TotalFare, 1e-9)
}

func TestDecode_ToleratesSolverNoise(t *testing.T) {
	g, f := diamondFixture(t)

	it, err := itinerary.Decode(g, "A", "D",
		f, optimal([]float64{1e-12, 1 - 1e-9, -1e-13, 1 + 1e-9}, 80))
	require.NoError(t, err)
	require.Equal(t, []string{"AC", "CD"}, it.FlightIDs())
}

func TestDecode_InputValidation(t *testing.T) {
	g, f := diamondFixture(t)
	res := optimal([]float64{0, 1, 0, 1}, 80)

	_, err := itinerary.Decode(nil, "A", "D", f, res)
	require.ErrorIs(t, err, itinerary.ErrNilGraph)

	_, err = itinerary.Decode(g, "A", "D", nil, res)
	require.ErrorIs(t, err, itinerary.ErrNilFormulation)

	_, err = itinerary.Decode(g, "A", "D", f, nil)
	require.ErrorIs(t, err, itinerary.ErrNilResult)

	_, err = itinerary.Decode(g, "", "D", f, res)
	require.ErrorIs(t, err, itinerary.ErrEmptyEndpoint)

	_, err = itinerary.Decode(g, "A", "A", f, res)
	require.ErrorIs(t, err, itinerary.ErrSameEndpoint)

	_, err = itinerary.Decode(g, "A", "D", f, optimal([]float64{0, 1}, 80))
	require.ErrorIs(t, err, itinerary.ErrDimensionMismatch)
}

func TestDecode_StatusMapping(t *testing.T) {
	g, f := diamondFixture(t)

	_, err := itinerary.Decode(g, "A", "D", f, &solver.Result{Status: solver.StatusInfeasible})
	require.ErrorIs(t, err, itinerary.ErrInfeasibleRoute)

	_, err = itinerary.Decode(g, "A", "D", f, &solver.Result{Status: solver.StatusUnbounded})
	require.ErrorIs(t, err, itinerary.ErrSolverStatus)

	_, err = itinerary.Decode(g, "A", "D", f, &solver.Result{Status: solver.StatusError})
	require.ErrorIs(t, err, itinerary.ErrSolverStatus)
}

func TestDecode_DegenerateShapes(t *testing.T) {
	g, f := diamondFixture(t)

	// Fractional split across both branches.
	_, err := itinerary.Decode(g, "A", "D", f, optimal([]float64{0.5, 0.5, 0.5, 0.5}, 80))
	require.ErrorIs(t, err, itinerary.ErrDegenerateSolution)

	// Two full departures from A.
	_, err = itinerary.Decode(g, "A", "D", f, optimal([]float64{1, 1, 1, 1}, 230))
	require.ErrorIs(t, err, itinerary.ErrDegenerateSolution)

	// All zeros under an optimal status.
	_, err = itinerary.Decode(g, "A", "D", f, optimal([]float64{0, 0, 0, 0}, 0))
	require.ErrorIs(t, err, itinerary.ErrDegenerateSolution)

	// Chain that never reaches the destination.
	_, err = itinerary.Decode(g, "A", "D", f, optimal([]float64{0, 1, 0, 0}, 40))
	require.ErrorIs(t, err, itinerary.ErrDegenerateSolution)
}

func TestDecode_DetachedCycle(t *testing.T) {
	// Path A→B plus a free-standing cycle C→D→C.
	g, err := core.NewFlightGraph([]core.Flight{
		{ID: "AB", From: "A", To: "B", Fare: 10},
		{ID: "CD", From: "C", To: "D", Fare: 0},
		{ID: "DC", From: "D", To: "C", Fare: 0},
	})
	require.NoError(t, err)
	f, err := lp.Formulate(g, "A", "B")
	require.NoError(t, err)

	_, err = itinerary.Decode(g, "A", "B", f, optimal([]float64{1, 1, 1}, 10))
	require.ErrorIs(t, err, itinerary.ErrDegenerateSolution)
}

func TestDecodeOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { itinerary.WithEpsilon(0) })
	require.Panics(t, func() { itinerary.WithEpsilon(0.5) })
	require.Panics(t, func() { itinerary.WithSolver(nil) })
	require.Panics(t, func() { itinerary.WithContext(nil) })
}
