// Package tsp - the Route state type.
//
// Route is the ordered, immutable sequence of visited cities backed by a
// single string with a non-printable separator. Backing the state with a
// string gives it value equality and a cheap stable hash for free, which is
// exactly what the engine's best-g map needs; every transition produces a
// new Route value and never mutates the old one.
package tsp

import "strings"

// routeSep separates city identifiers inside a Route. The unit-separator
// control character cannot appear in valid city IDs (enforced by Validate),
// so splitting on it always recovers the original sequence.
const routeSep = "\x1f"

// Route is an ordered, immutable visited-city prefix with value equality.
// The zero value is the empty route (no cities visited).
type Route string

// NewRoute returns a single-city route starting at first.
func NewRoute(first string) Route { return Route(first) }

// Len returns the number of cities in the route.
//
// Complexity: O(len) scan for separators.
func (r Route) Len() int {
	if r == "" {
		return 0
	}

	return strings.Count(string(r), routeSep) + 1
}

// Cities returns the visited cities in order. The empty route yields nil.
func (r Route) Cities() []string {
	if r == "" {
		return nil
	}

	return strings.Split(string(r), routeSep)
}

// First returns the start city of the route, or ErrEmptyRoute.
func (r Route) First() (string, error) {
	if r == "" {
		return "", ErrEmptyRoute
	}
	if i := strings.Index(string(r), routeSep); i >= 0 {
		return string(r)[:i], nil
	}

	return string(r), nil
}

// Last returns the most recently visited city, or ErrEmptyRoute.
func (r Route) Last() (string, error) {
	if r == "" {
		return "", ErrEmptyRoute
	}
	if i := strings.LastIndex(string(r), routeSep); i >= 0 {
		return string(r)[i+len(routeSep):], nil
	}

	return string(r), nil
}

// Contains reports whether city is already present in the route.
// Matching is exact per element; a city is never matched as a substring of
// another identifier.
func (r Route) Contains(city string) bool {
	if r == "" {
		return false
	}
	var c string
	for _, c = range r.Cities() {
		if c == city {
			return true
		}
	}

	return false
}

// Append returns a new route with city appended. The receiver is unchanged.
func (r Route) Append(city string) Route {
	if r == "" {
		return Route(city)
	}

	return r + Route(routeSep) + Route(city)
}

// String renders the route as "A → B → C" for diagnostics and examples.
func (r Route) String() string {
	return strings.Join(r.Cities(), " → ")
}
