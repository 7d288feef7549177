// File: errors.go
// Role: sentinel errors and the contextual RecordError for the builder
//       boundary. Everything rejected here never reaches the solver.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is the umbrella sentinel for any malformed flight
// record: negative or non-finite fare, identical origin/destination,
// empty city, or a duplicated explicit flight ID. Branch with
// errors.Is(err, ErrInvalidRecord); the concrete reason travels in the
// wrapped RecordError.
var ErrInvalidRecord = errors.New("builder: invalid flight record")

// RecordError carries the offending record and its position in the
// input, so callers can diagnose bad data without re-scanning it.
type RecordError struct {
	// Index is the zero-based position of the record in the input slice.
	Index int

	// Record is the rejected record, verbatim.
	Record Record

	// Reason is a short human-readable cause ("negative fare", ...).
	Reason string
}

// Error renders the record with full context.
func (e *RecordError) Error() string {
	return fmt.Sprintf("builder: record %d (%q→%q, fare=%v, id=%q): %s",
		e.Index, e.Record.Origin, e.Record.Destination, e.Record.Fare, e.Record.FlightID, e.Reason)
}

// Unwrap makes every RecordError match ErrInvalidRecord via errors.Is.
func (e *RecordError) Unwrap() error { return ErrInvalidRecord }
