package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyfare/builder"
)

func TestBuild_HappyPath(t *testing.T) {
	g, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 100, FlightID: "AB100"},
		{Origin: "B", Destination: "D", Fare: 50, FlightID: "BD50"},
		{Origin: "A", Destination: "C", Fare: 40, FlightID: "AC40"},
		{Origin: "C", Destination: "D", Fare: 40, FlightID: "CD40"},
	})
	require.NoError(t, err)
	require.Equal(t, 4, g.FlightCount())
	require.Equal(t, []string{"A", "B", "C", "D"}, g.Cities())
}

func TestBuild_GeneratedIDs(t *testing.T) {
	g, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 10},
		{Origin: "B", Destination: "C", Fare: 20},
	})
	require.NoError(t, err)

	// IDs are assigned in input order: "f1", "f2".
	f1, err := g.Flight("f1")
	require.NoError(t, err)
	require.Equal(t, "A", f1.From)

	f2, err := g.Flight("f2")
	require.NoError(t, err)
	require.Equal(t, "C", f2.To)
}

func TestBuild_GeneratedIDSkipsExplicit(t *testing.T) {
	// An explicit "f1" must not collide with the generated sequence.
	g, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 10, FlightID: "f1"},
		{Origin: "B", Destination: "C", Fare: 20},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.FlightCount())

	f2, err := g.Flight("f2")
	require.NoError(t, err)
	require.Equal(t, "B", f2.From)
}

func TestBuild_ParallelRecordsNeverMerged(t *testing.T) {
	g, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 30},
		{Origin: "A", Destination: "B", Fare: 90},
	})
	require.NoError(t, err)
	require.Equal(t, 2, g.FlightCount(), "parallel records must stay distinct edges")
}

func TestBuild_RejectsNegativeFare(t *testing.T) {
	_, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: -1},
	})
	require.ErrorIs(t, err, builder.ErrInvalidRecord)

	var rerr *builder.RecordError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, 0, rerr.Index)
	require.Contains(t, rerr.Error(), "negative fare")
}

func TestBuild_RejectsNonFiniteFare(t *testing.T) {
	for _, fare := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := builder.Build([]builder.Record{
			{Origin: "A", Destination: "B", Fare: fare},
		})
		require.ErrorIs(t, err, builder.ErrInvalidRecord)
	}
}

func TestBuild_RejectsSelfLoop(t *testing.T) {
	_, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "A", Fare: 5},
	})
	require.ErrorIs(t, err, builder.ErrInvalidRecord)

	var rerr *builder.RecordError
	require.ErrorAs(t, err, &rerr)
	require.Contains(t, rerr.Reason, "self-loop")
}

func TestBuild_RejectsEmptyCity(t *testing.T) {
	_, err := builder.Build([]builder.Record{
		{Origin: "", Destination: "B", Fare: 5},
	})
	require.ErrorIs(t, err, builder.ErrInvalidRecord)
}

func TestBuild_RejectsDuplicateExplicitID(t *testing.T) {
	_, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 5, FlightID: "x"},
		{Origin: "B", Destination: "C", Fare: 5, FlightID: "x"},
	})
	require.ErrorIs(t, err, builder.ErrInvalidRecord)

	var rerr *builder.RecordError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, 1, rerr.Index, "the second occurrence is the invalid one")
}

func TestBuild_ErrorReportsIndex(t *testing.T) {
	_, err := builder.Build([]builder.Record{
		{Origin: "A", Destination: "B", Fare: 5},
		{Origin: "B", Destination: "C", Fare: -2},
	})
	var rerr *builder.RecordError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, 1, rerr.Index)
	require.Equal(t, "B", rerr.Record.Origin)
}
