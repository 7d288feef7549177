// File: simplex.go
// Role: the gonum-backed adapter. Owns everything vendor-facing:
//       standard-form assembly (bound shifting, slack rows), presolve
//       (consistency + full row rank, which the dense simplex expects),
//       and engine status mapping.

package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	convexlp "gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/skyfare/lp"
)

// Simplex adapts gonum's dense simplex engine to the Solver contract.
// A Simplex value is stateless between calls and safe for concurrent
// use; construct one at process start and share it.
type Simplex struct {
	opts Options
}

// NewSimplex builds an adapter with the given options applied over
// DefaultOptions.
func NewSimplex(opts ...Option) *Simplex {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Simplex{opts: cfg}
}

// Solve runs the engine on f per the Solver contract.
//
// Steps:
//  1. Validate the formulation shape (ErrNilFormulation / ErrBadFormulation).
//  2. Materialize the sparse conservation system into a dense m×n matrix.
//  3. ModeContinuous: one relaxation solve. ModeBinary: branch-and-bound
//     over relaxations (branch.go).
//
// Complexity: one simplex solve is polynomial in practice on these
// systems; binary mode multiplies by the number of explored nodes
// (typically 1 — see DefaultMaxNodes).
func (s *Simplex) Solve(f *lp.Formulation) (*Result, error) {
	// 1) Shape validation. Misuse returns a nil Result: there is no
	//    solve outcome to report.
	if f == nil {
		return nil, ErrNilFormulation
	}
	n := f.NumVariables()
	m := f.NumConstraints()
	if len(f.Objective) != n || len(f.LowerBound) != n || len(f.UpperBound) != n {
		return nil, fmt.Errorf("%w: %d variables, %d objective, %d/%d bounds",
			ErrBadFormulation, n, len(f.Objective), len(f.LowerBound), len(f.UpperBound))
	}
	if len(f.RHS) != m {
		return nil, fmt.Errorf("%w: %d rows, %d RHS", ErrBadFormulation, m, len(f.RHS))
	}

	// 2) Dense conservation system. Entries outside the declared shape
	//    are a defect of the formulator, not of the data.
	a := mat.NewDense(maxInt(m, 1), maxInt(n, 1), nil)
	var e lp.Entry
	for _, e = range f.Entries {
		if e.Row < 0 || e.Row >= m || e.Col < 0 || e.Col >= n {
			return nil, fmt.Errorf("%w: entry (%d,%d) outside %d×%d", ErrBadFormulation, e.Row, e.Col, m, n)
		}
		a.Set(e.Row, e.Col, a.At(e.Row, e.Col)+e.Coef)
	}
	b := make([]float64, m)
	copy(b, f.RHS)

	ctx := s.opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return &Result{Status: StatusError}, fmt.Errorf("solver: canceled before solve: %w", err)
	}

	// 3) Dispatch by variable mode.
	if f.Mode == lp.ModeBinary {
		return s.solveBinary(ctx, a, b, f.Objective, f.LowerBound, f.UpperBound, m, n)
	}

	out := s.solveRelaxation(a, b, f.Objective, f.LowerBound, f.UpperBound, m, n)
	switch out.status {
	case StatusOptimal:
		return &Result{Status: StatusOptimal, Values: out.x, Objective: out.obj}, nil
	case StatusError:
		return &Result{Status: StatusError}, out.err
	default:
		return &Result{Status: out.status}, nil
	}
}

// relaxOut is the outcome of one relaxation solve.
type relaxOut struct {
	status Status
	x      []float64
	obj    float64
	err    error
}

// solveRelaxation solves min c·x s.t. a·x = b, lb ≤ x ≤ ub with
// continuous variables, by reduction to the engine's standard form
// (equalities over non-negative variables):
//
//  1. shift every variable by its lower bound: y = x − lb, so y ≥ 0
//     and the conservation RHS absorbs a·lb;
//  2. presolve the shifted equality system — detect inconsistent rows
//     (immediate infeasibility) and drop dependent rows (the city-row
//     system always carries at least one: rows sum to zero);
//  3. add one slack row y_j + s_j = ub_j − lb_j per variable to encode
//     the upper bound;
//  4. hand the assembled system to gonum and map its verdict.
func (s *Simplex) solveRelaxation(a *mat.Dense, b, c, lb, ub []float64, m, n int) relaxOut {
	tol := s.opts.Tol

	// 1) Bound shift. A negative width means conflicting fixings from
	//    branching — that subproblem is vacuously infeasible.
	width := make([]float64, n)
	var j int
	for j = 0; j < n; j++ {
		width[j] = ub[j] - lb[j]
		if width[j] < -tol {
			return relaxOut{status: StatusInfeasible}
		}
		if width[j] < 0 {
			width[j] = 0
		}
	}
	shifted := make([]float64, m)
	var r int
	for r = 0; r < m; r++ {
		v := b[r]
		for j = 0; j < n; j++ {
			v -= a.At(r, j) * lb[j]
		}
		shifted[r] = v
	}

	// 2) Presolve: maximal independent subset of the conservation rows.
	keep, consistent := independentRows(a, shifted, m, n, tol)
	if !consistent {
		return relaxOut{status: StatusInfeasible}
	}

	// 3) Standard-form assembly: columns [y_0..y_{n-1}, s_0..s_{n-1}],
	//    rows = kept conservation rows + n slack rows. Rows with a
	//    negative RHS are negated so every b entry is non-negative.
	rows := len(keep) + n
	cols := 2 * n
	std := mat.NewDense(rows, cols, nil)
	rhs := make([]float64, rows)
	var k int
	for k, r = range keep {
		sign := 1.0
		if shifted[r] < 0 {
			sign = -1.0
		}
		for j = 0; j < n; j++ {
			std.Set(k, j, sign*a.At(r, j))
		}
		rhs[k] = sign * shifted[r]
	}
	for j = 0; j < n; j++ {
		std.Set(len(keep)+j, j, 1)
		std.Set(len(keep)+j, n+j, 1)
		rhs[len(keep)+j] = width[j]
	}
	cost := make([]float64, cols)
	copy(cost, c)

	// 4) Engine call + verdict mapping.
	optF, optX, err := convexlp.Simplex(cost, std, rhs, tol, nil)
	switch {
	case err == nil:
		// Un-shift back into the original variable space.
		x := make([]float64, n)
		obj := optF
		for j = 0; j < n; j++ {
			x[j] = optX[j] + lb[j]
			obj += c[j] * lb[j]
		}

		return relaxOut{status: StatusOptimal, x: x, obj: obj}
	case isEngineInfeasible(err):
		return relaxOut{status: StatusInfeasible}
	case isEngineUnbounded(err):
		return relaxOut{status: StatusUnbounded}
	default:
		return relaxOut{status: StatusError, err: fmt.Errorf("%w: %v", ErrEngine, err)}
	}
}

// isEngineInfeasible recognizes gonum's infeasibility verdict.
func isEngineInfeasible(err error) bool { return errors.Is(err, convexlp.ErrInfeasible) }

// isEngineUnbounded recognizes gonum's unboundedness verdict.
func isEngineUnbounded(err error) bool { return errors.Is(err, convexlp.ErrUnbounded) }

// independentRows selects a maximal linearly independent subset of the
// equality rows via Gauss elimination with partial pivoting on an
// augmented working copy, and checks the dropped rows for consistency.
//
// Returns the original indices of the pivot rows (ascending) and false
// when some dependent row reduces to 0 = nonzero — an infeasible system
// that must never reach the engine (e.g. demand at a city no flight
// touches).
//
// Complexity: O(m·n·min(m,n)).
func independentRows(a *mat.Dense, b []float64, m, n int, tol float64) ([]int, bool) {
	// Working copy of the augmented system [a | b].
	work := make([][]float64, m)
	orig := make([]int, m)
	var r, j int
	for r = 0; r < m; r++ {
		row := make([]float64, n+1)
		for j = 0; j < n; j++ {
			row[j] = a.At(r, j)
		}
		row[n] = b[r]
		work[r] = row
		orig[r] = r
	}

	rank := 0
	var col int
	for col = 0; col < n && rank < m; col++ {
		// Partial pivot: the largest magnitude below the current rank.
		pivot, best := -1, tol
		for r = rank; r < m; r++ {
			if v := math.Abs(work[r][col]); v > best {
				pivot, best = r, v
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		orig[rank], orig[pivot] = orig[pivot], orig[rank]

		// Eliminate the column below the pivot.
		for r = rank + 1; r < m; r++ {
			factor := work[r][col] / work[rank][col]
			if factor == 0 {
				continue
			}
			for j = col; j <= n; j++ {
				work[r][j] -= factor * work[rank][j]
			}
		}
		rank++
	}

	// Dropped rows are all-zero on the left; a non-zero RHS there means
	// the original system is inconsistent.
	for r = rank; r < m; r++ {
		if math.Abs(work[r][n]) > tol {
			return nil, false
		}
	}

	keep := make([]int, rank)
	copy(keep, orig[:rank])
	sort.Ints(keep)

	return keep, true
}

// maxInt avoids zero-sized mat.Dense allocations for empty systems.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
