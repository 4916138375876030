// Package tsp_test provides fixtures shared across *_test.go files in this
// package - single source of truth for the reference instances.
package tsp_test

import "github.com/katalvlaran/bestpath/tsp"

// refCities is the 4-city reference instance; the tour starts at "A".
var refCities = []string{"A", "B", "C", "D"}

// refMatrix is the symmetric reference distance matrix:
// A↔B=10, A↔C=15, A↔D=20, B↔C=5, B↔D=12, C↔D=8.
func refMatrix() tsp.Matrix {
	return tsp.Matrix{
		"A": {"B": 10, "C": 15, "D": 20},
		"B": {"A": 10, "C": 5, "D": 12},
		"C": {"A": 15, "B": 5, "D": 8},
		"D": {"A": 20, "B": 12, "C": 8},
	}
}

// asymMatrix is a 3-city asymmetric instance where every path through the
// A↔C edge pays a cost of 100.
func asymMatrix() tsp.Matrix {
	return tsp.Matrix{
		"A": {"B": 1, "C": 100},
		"B": {"A": 1, "C": 1},
		"C": {"A": 100, "B": 1},
	}
}

// twoCityMatrix is the minimal 2-city instance.
func twoCityMatrix() tsp.Matrix {
	return tsp.Matrix{
		"A": {"B": 7},
		"B": {"A": 7},
	}
}
