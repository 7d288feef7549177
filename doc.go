// Package skyfare finds the cheapest multi-leg flight itinerary between
// two cities over a directed network of scheduled flights.
//
// 🚀 What is skyfare?
//
//	A linear-programming take on fare search:
//		• core/      — Flight & FlightGraph primitives (immutable, multigraph-aware)
//		• builder/   — strict flight-record validation & graph assembly
//		• lp/        — the single-unit minimum-cost-flow formulation
//		• solver/    — a narrow adapter over an external LP/MILP engine (gonum simplex + branch-and-bound)
//		• itinerary/ — decoding solved flows back into one simple path, end-to-end pipeline
//
// ✨ Why model fare search as a flow problem?
//
//   - Conservation constraints encode "valid connecting itinerary" exactly:
//     one unit leaves the source, one unit reaches the destination, every
//     intermediate city forwards what it receives.
//   - Parallel flights between the same pair of cities stay distinct, so the
//     optimizer always sees every priced option.
//   - The same formulation extends cleanly to capacities and banned routes
//     by tightening variable bounds, with no structural rewrite.
//
// The pipeline is purely computational and stateless between invocations:
//
//	records ─▶ builder ─▶ lp ─▶ solver ─▶ itinerary
//
// Each stage's output is the next stage's sole input. A built FlightGraph is
// immutable and may be shared read-only across concurrent requests.
//
// Quick ASCII example:
//
//	    A ──$100──▶ B
//	    │           │
//	   $40         $50
//	    ▼           ▼
//	    C ───$40──▶ D
//
//	Cheapest(g, "A", "D") returns [A→C, C→D] with total fare $80.
//
// Dive into the per-package docs for contracts, error taxonomy and the
// relaxation-vs-binary trade-off.
package skyfare
