// Package tsp - the distance matrix.
package tsp

import "fmt"

// Matrix maps (origin city, destination city) pairs to a non-negative
// distance via nested maps: Matrix[from][to]. The matrix need not be
// symmetric; whatever is supplied is honored as-is. Lookups for any pair of
// distinct cities that can occur as a transition must succeed.
type Matrix map[string]map[string]float64

// At returns the distance from one city to another. A missing row or entry
// is a precondition violation reported as ErrMissingDistance wrapped with
// the offending pair.
//
// Complexity: O(1).
func (m Matrix) At(from, to string) (float64, error) {
	row, ok := m[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrMissingDistance, from, to)
	}
	d, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s→%s", ErrMissingDistance, from, to)
	}

	return d, nil
}
