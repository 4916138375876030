// Package tsp - Graphviz DOT export of a solved route.
package tsp

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// dotGraphName is the name of the emitted digraph.
const dotGraphName = "tour"

// TourDOT renders a visited-city order as a Graphviz digraph: one node per
// city in visiting order, one edge per hop labeled with its distance, plus
// the closing edge back to the start. Feed the output to `dot -Tsvg` (or
// any Graphviz consumer) to visualize a Solve result.
//
// Errors: ErrNoCities for an empty order; wrapped ErrMissingDistance when
// an edge of the order has no matrix entry.
//
// Complexity: O(n) nodes and edges.
func TourDOT(order []string, m Matrix) (string, error) {
	if len(order) == 0 {
		return "", ErrNoCities
	}

	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", fmt.Errorf("tsp: dot graph: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("tsp: dot graph: %w", err)
	}

	// 1) One node per city, in visiting order.
	var city string
	for _, city = range order {
		if err := g.AddNode(dotGraphName, strconv.Quote(city), nil); err != nil {
			return "", fmt.Errorf("tsp: dot node %q: %w", city, err)
		}
	}

	// 2) One edge per hop, including the closing edge, labeled with the
	//    distance from the matrix.
	var (
		i        int
		from, to string
		d        float64
		err      error
	)
	for i = 0; i < len(order); i++ {
		from = order[i]
		to = order[(i+1)%len(order)]
		if from == to {
			// Single-city order: nothing to draw beyond the node.
			break
		}
		if d, err = m.At(from, to); err != nil {
			return "", err
		}
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatFloat(d, 'g', -1, 64)),
		}
		if err = g.AddEdge(strconv.Quote(from), strconv.Quote(to), true, attrs); err != nil {
			return "", fmt.Errorf("tsp: dot edge %s→%s: %w", from, to, err)
		}
	}

	return g.String(), nil
}
