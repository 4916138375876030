// Package search - the abstract Problem contract and the search-tree Node.
//
// Problem defines a state space without knowing anything about search
// strategy; the engine in astar.go drives any implementation of it.
// Node records how a state was reached: the parent link, the producing
// action, the accumulated cost g, and the heuristic estimate h computed
// once at creation.
package search

// Problem describes a state space for best-first search.
//
// S is the state type. States must have value equality (S comparable) so
// the engine can use them as keys in its best-g map; prefer small immutable
// values (strings, arrays, value structs) over pointers.
// A is the action type.
//
// Contract (all methods must be pure and deterministic):
//
//   - InitialState returns the designated start state. No side effects.
//   - IsGoal reports whether s is terminal.
//   - Actions returns the actions applicable in s, in a deterministic
//     order (the engine's tie-breaking is only reproducible if the
//     expansion order is). Must be empty exactly when IsGoal(s) is true.
//   - Result returns the successor of s under a. It must not mutate s;
//     every transition produces a new state value. An action that is not
//     applicable in s is a precondition violation and returns an error.
//   - Cost returns the non-negative cost of the transition s → next via a.
//     A negative cost, or a transition whose cost is undefined, is a
//     precondition violation surfaced as an error.
//   - Heuristic returns a non-negative estimate of the remaining cost from
//     s to a goal. It is computed once per generated node. Estimates that
//     overestimate the true remaining cost forfeit optimality but not
//     correctness (the engine re-opens states found via cheaper paths).
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoal(s S) bool
	Actions(s S) []A
	Result(s S, a A) (S, error)
	Cost(s S, a A, next S) (float64, error)
	Heuristic(s S) (float64, error)
}

// Node is a search-tree record: the state it represents, an ownership
// reference to its parent (nil for the root), the action that produced it,
// the accumulated path cost G and the heuristic estimate H. Nodes form a
// tree rooted at the initial state; parent links never cycle, so walking
// Parent pointers always terminates at the root.
type Node[S comparable, A any] struct {
	State  S           // The state this node represents.
	Parent *Node[S, A] // Parent node; nil at the root.
	Action A           // Action that produced State from Parent.State; zero at the root.
	G      float64     // Accumulated path cost from the root.
	H      float64     // Heuristic estimate, computed once at creation.
}

// F returns the node's total priority g + h.
func (n *Node[S, A]) F() float64 { return n.G + n.H }

// Depth returns the number of edges between n and the root.
//
// Complexity: O(depth).
func (n *Node[S, A]) Depth() int {
	var d int
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		d++
	}

	return d
}

// Step is one element of a reconstructed path: the action taken and the
// state it produced. The root step carries the zero Action.
type Step[S comparable, A any] struct {
	Action A // Action applied to the previous state; zero value at the root.
	State  S // Resulting state.
}

// Path reconstructs the root→terminal path by walking parent references and
// reversing. The first step is the root (zero Action, initial state); the
// last step's State equals n.State.
//
// Complexity: O(depth) time and space.
func (n *Node[S, A]) Path() []Step[S, A] {
	// 1) Collect terminal→root by walking parent links.
	steps := make([]Step[S, A], 0, n.Depth()+1)
	for cur := n; cur != nil; cur = cur.Parent {
		steps = append(steps, Step[S, A]{Action: cur.Action, State: cur.State})
	}

	// 2) Reverse in place to obtain root→terminal order.
	var i, j int
	for i, j = 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// States returns the states along the root→terminal path, in order.
//
// Complexity: O(depth) time and space.
func (n *Node[S, A]) States() []S {
	steps := n.Path()
	out := make([]S, len(steps))
	var i int
	for i = range steps {
		out[i] = steps[i].State
	}

	return out
}
