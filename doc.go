// Package bestpath is an in-memory toolkit for best-first state-space
// search, shipping a generic A* engine and a ready-made Traveling
// Salesman problem model that plugs into it.
//
// 🚀 What is bestpath?
//
//	A small, deterministic, pure-Go library that brings together:
//		• search/ — a generic A* engine over an abstract Problem contract
//		  (initial state, goal test, actions, transitions, costs, heuristic)
//		• tsp/    — a TSP state-space model: route states, distance matrix,
//		  nearest-hop heuristic, plus a one-call Solve facade and DOT export
//
// ✨ Why choose bestpath?
//
//   - Deterministic – FIFO tie-breaking on equal priorities, reproducible runs
//   - Strict errors – sentinel errors for every malformed input, no panics
//   - Pure Go – no cgo, in-memory only, single-threaded by contract
//   - Extensible – implement search.Problem for any state space you like
//
// Quick taste:
//
//	res, err := tsp.Solve(
//	    []string{"A", "B", "C", "D"},
//	    tsp.Matrix{
//	        "A": {"B": 10, "C": 15, "D": 20},
//	        "B": {"A": 10, "C": 5, "D": 12},
//	        "C": {"A": 15, "B": 5, "D": 8},
//	        "D": {"A": 20, "B": 12, "C": 8},
//	    },
//	)
//	// res.Order == visited cities, res.Cost == path cost.
//
// Dive into search/doc.go and tsp/doc.go for contracts and complexity notes.
//
//	go get github.com/katalvlaran/bestpath
package bestpath
