// File: branch.go
// Role: depth-first branch-and-bound over LP relaxations for binary
//       formulations. On unit-flow path models the root relaxation is
//       already integral, so the loop usually terminates at node 1;
//       the search only deepens once future models tighten the box.

package solver

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// integralityTol decides when a relaxation value counts as integral.
// Looser than the engine tolerance on purpose: simplex noise around
// 0 and 1 must not trigger pointless branching.
const integralityTol = 1e-6

// bbNode is one open subproblem: the variable box after fixings.
type bbNode struct {
	lb, ub []float64
}

// solveBinary minimizes c·x over the conservation system with every
// variable restricted to {lb_j, …, ub_j} ∩ ℤ (in the baseline model,
// {0,1}).
//
// Strategy: depth-first search, most-fractional branching, incumbent
// pruning by objective bound. Cancellation and the node budget are
// checked once per node.
func (s *Simplex) solveBinary(ctx context.Context, a *mat.Dense, b, c, lb, ub []float64, m, n int) (*Result, error) {
	stack := []bbNode{{lb: cloneFloats(lb), ub: cloneFloats(ub)}}

	var (
		bestX   []float64
		bestObj = math.Inf(1)
		have    bool
		nodes   int
	)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return &Result{Status: StatusError}, fmt.Errorf("solver: canceled after %d nodes: %w", nodes, err)
		}
		nodes++
		if nodes > s.opts.MaxNodes {
			return &Result{Status: StatusError}, fmt.Errorf("%w: budget %d", ErrNodeLimit, s.opts.MaxNodes)
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out := s.solveRelaxation(a, b, c, node.lb, node.ub, m, n)
		switch out.status {
		case StatusInfeasible:
			continue
		case StatusUnbounded:
			// Cannot happen for a box-bounded model; surfaced verbatim.
			return &Result{Status: StatusUnbounded}, nil
		case StatusError:
			return &Result{Status: StatusError}, out.err
		}

		// Bound prune: the relaxation is a lower bound for the subtree.
		if have && out.obj >= bestObj-s.opts.Tol {
			continue
		}

		// Most-fractional branching variable, if any.
		frac, dist := -1, integralityTol
		var j int
		for j = 0; j < n; j++ {
			if d := math.Abs(out.x[j] - math.Round(out.x[j])); d > dist {
				frac, dist = j, d
			}
		}

		if frac < 0 {
			// Integral: new incumbent. Snap residual noise to the grid so
			// downstream decoding sees clean 0/1 values.
			bestObj = out.obj
			bestX = make([]float64, n)
			for j = 0; j < n; j++ {
				bestX[j] = math.Round(out.x[j])
			}
			have = true

			continue
		}

		// Two children fixing the fractional variable; push the rounding
		// away from the relaxation value first so DFS explores the
		// nearer fixing on top of the stack.
		down := bbNode{lb: cloneFloats(node.lb), ub: cloneFloats(node.ub)}
		down.ub[frac] = math.Floor(out.x[frac])
		down.lb[frac] = math.Min(down.lb[frac], down.ub[frac])

		upN := bbNode{lb: cloneFloats(node.lb), ub: cloneFloats(node.ub)}
		upN.lb[frac] = math.Ceil(out.x[frac])
		upN.ub[frac] = math.Max(upN.ub[frac], upN.lb[frac])

		if out.x[frac]-math.Floor(out.x[frac]) < 0.5 {
			stack = append(stack, upN, down)
		} else {
			stack = append(stack, down, upN)
		}
	}

	if !have {
		return &Result{Status: StatusInfeasible}, nil
	}

	return &Result{Status: StatusOptimal, Values: bestX, Objective: bestObj}, nil
}

// cloneFloats copies a bound vector for an independent subproblem.
func cloneFloats(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
