// Package tsp models the Traveling Salesman Problem as a state space for
// the best-first engine in package search.
//
// A state is a Route: the ordered, immutable prefix of cities visited so
// far, starting at the first city of the supplied list. An action is the
// identifier of the city to visit next; the transition cost is the distance
// from the route's last city to it. A route is a goal once it contains
// every city exactly once.
//
// The bundled heuristic is the reference nearest-hop estimate:
//
//   - at a goal route, the cost of the closing edge back to the start
//     (turning the path into a round trip);
//   - otherwise, the minimum distance from the last visited city to any
//     unvisited city.
//
// This is a *local* lower bound on the very next edge only. It is not
// guaranteed to lower-bound the cost of visiting all remaining cities, so
// the search is not guaranteed to return an optimal tour for arbitrary
// distance matrices. This is a known, deliberate limitation; an admissible
// bound (e.g. an MST over unvisited cities) can be supplied by implementing
// search.Problem directly.
//
// The distance matrix need not be symmetric. Every pair of distinct cities
// that can occur as a transition must have an entry, including the closing
// edge from each city back to the start; a missing entry is a fatal
// precondition violation (ErrMissingDistance), never silently skipped.
//
// Entry points:
//
//   - Solve: one call from (cities, matrix) to a Result with the visited
//     order, path cost, closed-tour cost and the full step-by-step path.
//   - NewProblem: the same model as a search.Problem value, for callers
//     that want to drive the engine themselves.
//   - TourDOT: Graphviz DOT export of a solved route for visualization.
//
// Complexity: the state space has O(n!) routes; A* with the nearest-hop
// heuristic prunes in practice but remains exponential in the worst case.
// Intended for small instances (n ≲ 12).
package tsp
