// Package tsp - the one-call solver facade.
//
// Solve wires the pieces together: validate inputs, build the Problem, run
// the best-first engine, and derive a Result from the terminal node.
//
// Design principles:
//   - Deterministic: city-list order drives expansion order; the engine
//     breaks priority ties FIFO, so repeated runs are identical.
//   - Strict sentinels: errors from types.go and package search only.
//   - Stable cost: returned costs are rounded to 1e−9 to prevent FP drift.
package tsp

import (
	"math"

	"github.com/katalvlaran/bestpath/search"
)

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting comparisons.
const roundScale = 1e9

// Solve runs best-first search over the TSP state space defined by cities
// and m, and returns the visited order, the path cost, the closed-tour
// cost and the reconstructed path. The first city in the list is the fixed
// tour start.
//
// Engine options (e.g. search.WithMaxExpansions) are forwarded as-is.
//
// Errors:
//
//   - validation sentinels from types.go for malformed inputs;
//   - wrapped ErrMissingDistance when a transition or heuristic lookup has
//     no matrix entry (fatal precondition, surfaced at the point of use);
//   - search.ErrNoSolution / search.ErrBudgetExhausted from the engine -
//     the only outcomes a driver is expected to handle gracefully.
//
// Complexity: exponential in the worst case (state space is O(n!)); see
// package docs.
func Solve(cities []string, m Matrix, opts ...search.Option) (Result, error) {
	// 1) Validate and build the model.
	p, err := NewProblem(cities, m)
	if err != nil {
		return Result{}, err
	}

	// 2) Run the engine to the first goal dequeue.
	node, err := search.Solve[Route, string](p, opts...)
	if err != nil {
		return Result{}, err
	}

	// 3) Derive the result views from the terminal node.
	var (
		terminal    = node.State
		first, last string
	)
	if first, err = terminal.First(); err != nil {
		return Result{}, err
	}
	if last, err = terminal.Last(); err != nil {
		return Result{}, err
	}

	// The closing edge was already required by the goal heuristic, so this
	// lookup can only fail on a single-city instance with no self-entry -
	// in that degenerate case the closed tour equals the (empty) path.
	var closing float64
	if first != last {
		if closing, err = m.At(last, first); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Order:      terminal.Cities(),
		Cost:       round1e9(node.G),
		ClosedCost: round1e9(node.G + closing),
		Path:       node.Path(),
	}, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
