// Package solver is the narrow boundary between the fare formulation
// and an external numeric optimization engine.
//
// The core places exactly one contract on this package: given an
// objective and a linear equality system with box bounds and an
// integrality mode, return OPTIMAL with a variable assignment,
// INFEASIBLE, UNBOUNDED, or ERROR. Nothing upstream assumes a specific
// algorithm (simplex vs. interior point vs. branch-and-bound), and
// nothing downstream sees a vendor API — only the Result shape.
//
// The bundled adapter, Simplex, drives gonum's dense simplex
// (gonum.org/v1/gonum/optimize/convex/lp) and layers a small
// branch-and-bound loop on top for binary formulations. Adapters are
// stateless and reusable: configure one at process start and pass it
// explicitly into each pipeline invocation.
//
// Determinism is NOT guaranteed across fare ties: two equal-fare paths
// may be returned interchangeably. Callers must tolerate that.
package solver

import (
	"errors"

	"github.com/katalvlaran/skyfare/lp"
)

// Sentinel errors returned by the Simplex adapter.
var (
	// ErrNilFormulation indicates a nil *lp.Formulation was passed to Solve.
	ErrNilFormulation = errors.New("solver: formulation is nil")

	// ErrBadFormulation indicates internally inconsistent formulation
	// dimensions (objective/bounds/entries out of alignment). Always a
	// programming defect upstream, never bad user data.
	ErrBadFormulation = errors.New("solver: malformed formulation")

	// ErrEngine indicates the external engine failed for a reason other
	// than infeasibility or unboundedness.
	ErrEngine = errors.New("solver: engine failure")

	// ErrNodeLimit indicates branch-and-bound exhausted its node budget.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit exceeded")
)

// Status is the outcome of a solve call.
type Status int

const (
	// StatusOptimal means the engine proved optimality and Values holds
	// one value per decision variable.
	StatusOptimal Status = iota

	// StatusInfeasible means the constraint system admits no solution
	// (no connecting path exists for this model).
	StatusInfeasible

	// StatusUnbounded means the objective is unbounded below. It cannot
	// occur for the bounded, non-negative-fare flight model; observing
	// it always indicates a modeling defect.
	StatusUnbounded

	// StatusError means the engine failed or the solve was canceled;
	// the accompanying error carries the cause.
	StatusError
)

// String renders the status for error messages and logs.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the engine-agnostic outcome of one solve.
type Result struct {
	// Status is the solve outcome.
	Status Status

	// Values holds the primal value of each decision variable, aligned
	// with the formulation's FlightIDs column order. Populated only
	// when Status == StatusOptimal.
	Values []float64

	// Objective is the objective value at the solution. Populated only
	// when Status == StatusOptimal.
	Objective float64
}

// IsOptimal reports whether the solve proved optimality.
func (r *Result) IsOptimal() bool { return r != nil && r.Status == StatusOptimal }

// Solver is the abstract adapter seam: any engine that can answer the
// Formulation contract may be plugged into the pipeline here.
type Solver interface {
	// Solve runs the engine on f. Infeasible and unbounded outcomes are
	// statuses, not errors; a non-nil error accompanies StatusError
	// (engine failure, cancellation) or adapter misuse (nil/malformed
	// formulation, in which case the Result is nil).
	Solve(f *lp.Formulation) (*Result, error)
}
