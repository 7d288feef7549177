// Package builder is the normalization boundary between raw flight
// records and the immutable core.FlightGraph the optimizer consumes.
//
// Records arrive from heterogeneous sources (CSV, JSON, database rows;
// the loading itself is a separate collaborator). The builder accepts
// one explicit shape, rejects anything that fails the schema, and never
// coerces silently. Multiple records between the same city pair are
// preserved as distinct parallel edges.
//
// Contract (strict):
//   - Build is a pure transformation: no side effects, no retained state.
//   - Validation fails fast with a *RecordError wrapping ErrInvalidRecord,
//     carrying the offending record and its index.
//   - Records with an empty FlightID receive generated IDs "f1", "f2", …
//     in input order; explicit IDs must be unique.
package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/skyfare/core"
)

// flightIDPrefix is the textual prefix for generated flight IDs.
// Byte form allows appending to a []byte buffer without fmt.
const flightIDPrefix = 'f'

// Record is one raw flight record as delivered by a data-loading
// collaborator: origin, destination, fare, and an optional identifier.
type Record struct {
	// Origin is the departure city.
	Origin string

	// Destination is the arrival city.
	Destination string

	// Fare is the ticket price; must be a finite non-negative number.
	Fare float64

	// FlightID optionally identifies the record for traceability.
	// Empty IDs are auto-generated in input order.
	FlightID string
}

// Build validates records and assembles an immutable core.FlightGraph.
//
// Validation (per record, in order; fail fast):
//  1. Origin and Destination non-empty.
//  2. Origin ≠ Destination (a self-loop is never a valid flight leg).
//  3. Fare finite (rejects NaN/±Inf) and non-negative.
//  4. Explicit FlightIDs unique across the input.
//
// Complexity: O(R) validation + O(R log R) graph assembly for R records.
func Build(records []Record) (*core.FlightGraph, error) {
	// 1) Validate and normalize into core.Flight values.
	flights := make([]core.Flight, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	var (
		r    Record
		i    int
		next uint64 // generated-ID sequence, 1-based
	)
	for i, r = range records {
		if r.Origin == "" || r.Destination == "" {
			return nil, &RecordError{Index: i, Record: r, Reason: "empty origin or destination city"}
		}
		if r.Origin == r.Destination {
			return nil, &RecordError{Index: i, Record: r, Reason: "origin equals destination (self-loop)"}
		}
		if math.IsNaN(r.Fare) || math.IsInf(r.Fare, 0) {
			return nil, &RecordError{Index: i, Record: r, Reason: "fare is not a finite number"}
		}
		if r.Fare < 0 {
			return nil, &RecordError{Index: i, Record: r, Reason: "negative fare"}
		}

		id := r.FlightID
		if id == "" {
			// Advance past any explicit ID occupying the generated slot.
			for {
				next++
				id = nextFlightID(next)
				if _, taken := seen[id]; !taken {
					break
				}
			}
		} else if _, dup := seen[id]; dup {
			return nil, &RecordError{Index: i, Record: r, Reason: "duplicate flight ID"}
		}
		seen[id] = struct{}{}

		flights = append(flights, core.Flight{
			ID:   id,
			From: r.Origin,
			To:   r.Destination,
			Fare: r.Fare,
		})
	}

	// 2) Delegate assembly; core re-checks the same invariants (double guard).
	g, err := core.NewFlightGraph(flights)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return g, nil
}

// nextFlightID renders "f" + decimal digits without fmt allocations.
func nextFlightID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "f" + up to 20 digits for uint64
	buf = append(buf, flightIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
