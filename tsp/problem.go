// Package tsp - the state-space model implementing search.Problem.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bestpath/search"
)

// Problem is the TSP instantiation of the search.Problem contract over
// Route states and city-identifier actions. It is immutable after
// construction: all methods are pure, so concurrent Solve runs over the
// same Problem are safe.
type Problem struct {
	cities []string            // City list in supplied order; cities[0] is the fixed start.
	index  map[string]struct{} // Membership set for action validation.
	matrix Matrix              // Distance lookup; treated as read-only.
}

// Compile-time check: *Problem satisfies the engine contract.
var _ search.Problem[Route, string] = (*Problem)(nil)

// NewProblem validates the inputs and builds a Problem. The first city in
// the list is the fixed tour start. The city slice is copied; the matrix is
// referenced and must not be mutated during a search.
//
// Errors: ErrNoCities, ErrBadCityID, ErrDuplicateCity, ErrNegativeWeight,
// ErrBadDistance (see validate.go). Missing matrix entries surface later,
// at Cost/Heuristic time.
func NewProblem(cities []string, m Matrix) (*Problem, error) {
	if err := validateAll(cities, m); err != nil {
		return nil, err
	}

	p := &Problem{
		cities: append([]string(nil), cities...),
		index:  make(map[string]struct{}, len(cities)),
		matrix: m,
	}
	var id string
	for _, id = range p.cities {
		p.index[id] = struct{}{}
	}

	return p, nil
}

// Cities returns a copy of the city list in supplied order.
func (p *Problem) Cities() []string {
	return append([]string(nil), p.cities...)
}

// InitialState returns the designated start state: a one-city route at the
// first city of the supplied list. No side effects.
func (p *Problem) InitialState() Route {
	return NewRoute(p.cities[0])
}

// IsGoal reports whether every city appears in the route, i.e. the route
// length equals the city-set cardinality. Pure predicate; the no-duplicate
// invariant is maintained by Result.
func (p *Problem) IsGoal(r Route) bool {
	return r.Len() == len(p.cities)
}

// Actions returns the cities not yet present in the route, in the order of
// the supplied city list. The order is deterministic, which makes the
// engine's FIFO tie-breaking reproducible. Empty exactly when IsGoal(r).
//
// Complexity: O(n·k) for route length k (exact-element containment scan).
func (p *Problem) Actions(r Route) []string {
	out := make([]string, 0, len(p.cities)-r.Len())
	var c string
	for _, c = range p.cities {
		if !r.Contains(c) {
			out = append(out, c)
		}
	}

	return out
}

// Result returns the new route formed by appending city to r. Appending a
// city already present (or one outside the problem) is a precondition
// violation.
func (p *Problem) Result(r Route, city string) (Route, error) {
	if _, ok := p.index[city]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if r.Contains(city) {
		return "", fmt.Errorf("%w: %q in %s", ErrCityRevisited, city, r)
	}

	return r.Append(city), nil
}

// Cost returns the distance from the last city of r to city. Fails if r is
// empty (no "last city") or the matrix pair is absent.
// The next parameter is part of the generic contract and is not needed by
// this model.
func (p *Problem) Cost(r Route, city string, next Route) (float64, error) {
	last, err := r.Last()
	if err != nil {
		return 0, err
	}

	return p.matrix.At(last, city)
}

// Heuristic returns the reference nearest-hop estimate of remaining cost:
//
//   - goal route → the closing edge from the last city back to the start;
//   - otherwise → the minimum distance from the last city to any unvisited
//     city (a relaxed bound on the next single hop only; see package docs
//     for the admissibility caveat).
//
// Any required pair missing from the matrix is a precondition violation.
//
// Complexity: O(n·k) for route length k.
func (p *Problem) Heuristic(r Route) (float64, error) {
	last, err := r.Last()
	if err != nil {
		return 0, err
	}

	// Goal: estimate the cost of closing the tour into a round trip.
	if p.IsGoal(r) {
		first, ferr := r.First()
		if ferr != nil {
			return 0, ferr
		}
		// A single-city tour is already closed; no self-edge is required.
		if first == last {
			return 0, nil
		}

		return p.matrix.At(last, first)
	}

	// Otherwise: cheapest possible next hop among unvisited cities.
	var (
		min = math.Inf(1)
		c   string
		d   float64
	)
	for _, c = range p.cities {
		if r.Contains(c) {
			continue
		}
		d, err = p.matrix.At(last, c)
		if err != nil {
			return 0, err
		}
		if d < min {
			min = d
		}
	}

	return min, nil
}
