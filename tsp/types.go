// Package tsp - sentinel errors and result types.
//
// Design principles (shared with package search):
//   - Strict sentinels: all failures are errors.Is-testable values below,
//     optionally wrapped with the offending city pair or route.
//   - No logging, no panics on user input.
package tsp

import (
	"errors"

	"github.com/katalvlaran/bestpath/search"
)

// Sentinel errors returned by the TSP model.
var (
	// ErrNoCities indicates an empty city list.
	ErrNoCities = errors.New("tsp: city list is empty")

	// ErrBadCityID indicates a city identifier that is empty or contains
	// the reserved route separator rune.
	ErrBadCityID = errors.New("tsp: invalid city ID")

	// ErrDuplicateCity indicates that a city identifier appears more than
	// once in the city list.
	ErrDuplicateCity = errors.New("tsp: duplicate city ID")

	// ErrUnknownCity indicates an action referencing a city that is not
	// part of the problem's city list.
	ErrUnknownCity = errors.New("tsp: city not in problem")

	// ErrCityRevisited indicates an action that would visit a city already
	// present in the route - a precondition violation, never silently
	// skipped.
	ErrCityRevisited = errors.New("tsp: city already visited")

	// ErrEmptyRoute indicates a route operation that requires at least one
	// visited city (e.g. a "last city" lookup) on an empty route.
	ErrEmptyRoute = errors.New("tsp: route is empty")

	// ErrMissingDistance indicates that the distance matrix has no entry
	// for a required (from, to) pair.
	ErrMissingDistance = errors.New("tsp: missing distance matrix entry")

	// ErrNegativeWeight indicates a negative distance in the matrix.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrBadDistance indicates a NaN or infinite distance in the matrix.
	ErrBadDistance = errors.New("tsp: distance is NaN or infinite")
)

// Result holds the outcome of a successful Solve run.
type Result struct {
	// Order is the visited-city sequence of the terminal route, starting
	// with the first city of the supplied list. len(Order) == n.
	Order []string

	// Cost is the accumulated path cost g of the terminal node: the sum of
	// the n-1 chosen edges. It does NOT include the closing edge.
	Cost float64

	// ClosedCost is Cost plus the closing edge from the last visited city
	// back to the start - the round-trip tour cost.
	ClosedCost float64

	// Path is the root→terminal reconstruction: (action, resulting route)
	// pairs. The first step is the root (empty action, one-city route).
	Path []search.Step[Route, string]
}
