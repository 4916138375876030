// Package tsp - validation shared by NewProblem and Solve.
//
// This file contains small, tight helpers that:
//  1. Validate the city list (non-empty, unique, well-formed IDs).
//  2. Validate the distance matrix entries that are present (finite,
//     non-negative).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, wrapped with the offending city or pair.
//   - Missing matrix entries are NOT rejected here: completeness depends on
//     which transitions the search actually takes, so absent pairs surface
//     at Cost/Heuristic time as ErrMissingDistance.
package tsp

import (
	"fmt"
	"math"
	"strings"
)

// validateAll verifies the city list and the supplied matrix entries.
// It returns nil on success.
//
// Complexity: O(n) for IDs + O(|entries|) for the matrix scan.
func validateAll(cities []string, m Matrix) error {
	// Stage 1: city list shape and uniqueness.
	if err := validateCities(cities); err != nil {
		return err
	}

	// Stage 2: every present matrix entry must be a usable distance.
	return validateMatrixEntries(m)
}

// validateCities enforces a non-empty list of unique, non-empty city IDs
// that do not contain the reserved route separator.
//
// Complexity: O(n) time, O(n) extra space.
func validateCities(cities []string) error {
	if len(cities) == 0 {
		return ErrNoCities
	}
	seen := make(map[string]struct{}, len(cities))

	var (
		id string
		ok bool
	)
	for _, id = range cities {
		if id == "" || strings.Contains(id, routeSep) {
			return fmt.Errorf("%w: %q", ErrBadCityID, id)
		}
		if _, ok = seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateCity, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateMatrixEntries rejects negative, NaN and infinite distances among
// the entries that exist. Diagonal entries (from==to), if supplied, are
// checked like any other; they are never looked up by the model.
//
// Complexity: O(|entries|).
func validateMatrixEntries(m Matrix) error {
	var (
		from, to string
		row      map[string]float64
		d        float64
	)
	for from, row = range m {
		for to, d = range row {
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return fmt.Errorf("%w: %s→%s=%v", ErrBadDistance, from, to, d)
			}
			if d < 0 {
				return fmt.Errorf("%w: %s→%s=%v", ErrNegativeWeight, from, to, d)
			}
		}
	}

	return nil
}
