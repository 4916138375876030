// Package search implements best-first (A*) search over an abstract
// state-space Problem contract.
//
// A* expands the frontier node with the smallest priority f = g + h, where
// g is the accumulated path cost from the root and h is the problem's
// heuristic estimate of the remaining cost. The engine keeps an explored
// map of the best known g per state and re-opens a state whenever a
// strictly cheaper path to it is discovered, which keeps results correct
// even for heuristics that are not admissible.
//
// Complexity:
//
//   - Time:  O(N log N) heap operations for N generated nodes; N is bounded
//     by the number of distinct (state, improving-g) discoveries and is
//     exponential in the worst case for combinatorial state spaces.
//   - Space: O(N) for the frontier plus O(|states seen|) for the best-g map.
//
// Determinism:
//
//   - Nodes with equal f are dequeued in insertion order (FIFO among ties),
//     realized by a monotonically increasing sequence counter folded into
//     the heap comparison. Given a Problem whose Actions order is
//     deterministic, repeated runs produce identical results.
//
// Error policy:
//
//   - Malformed problems (negative step costs, failing transitions) abort
//     the run immediately with a sentinel error wrapped with the offending
//     state and action. Frontier exhaustion is reported as ErrNoSolution,
//     distinct from any precondition violation, and is the only outcome a
//     caller is expected to handle gracefully.
//
// Use this package by implementing Problem for your state space and calling
// Solve; see the tsp package for a complete instantiation.
package search
