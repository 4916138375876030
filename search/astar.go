// Package search - the A* engine loop.
//
// Solve drives a best-first exploration of the state space described by a
// Problem: a frontier (open list) ordered by f = g + h with FIFO
// tie-breaking, and an explored map (closed list) holding the best known g
// per state. A state is re-opened whenever a strictly cheaper path to it is
// discovered, which keeps the engine correct for non-admissible heuristics
// at the cost of potentially re-expanding states.
package search

import (
	"container/heap"
	"fmt"
	"math"
)

// Solve runs best-first (A*) search on p and returns the terminal node of
// the best path discovered: the first goal node dequeued from the frontier.
// From the returned node callers derive the visited-order states
// (Node.States), the total path cost (Node.G) and the step-by-step path
// (Node.Path).
//
// Returns:
//
//   - (*Node, nil) on success.
//   - (nil, ErrNoSolution) when the frontier empties without a goal —
//     the reportable "no solution" outcome.
//   - (nil, ErrBudgetExhausted) when Options.MaxExpansions expansions
//     happen without dequeuing a goal.
//   - (nil, err) wrapping a sentinel on any precondition violation
//     (failing transition, negative cost, negative heuristic); the error
//     text identifies the offending state and action.
//
// The run is single-threaded and synchronous; each call owns its frontier
// and explored structures exclusively, so concurrent calls over
// side-effect-free Problems are safe.
//
// Complexity:
//
//   - Time:  O(N log N) for N generated nodes (heap pushes/pops).
//   - Space: O(N) frontier + O(|states seen|) best-g map.
func Solve[S comparable, A any](p Problem[S, A], opts ...Option) (*Node[S, A], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate the problem itself.
	if p == nil {
		return nil, ErrNilProblem
	}

	// 3) Initialize the run state and seed the frontier with the root.
	r := &runner[S, A]{
		problem: p,
		options: cfg,
		bestG:   make(map[S]float64),
		pq:      make(frontier[S, A], 0),
	}
	if err := r.init(); err != nil {
		return nil, err
	}

	// 4) Run the main loop to success, exhaustion, or budget stop.
	return r.process()
}

// runner holds the mutable state for a single Solve execution.
type runner[S comparable, A any] struct {
	problem  Problem[S, A]  // The state space under search; read-only here.
	options  Options        // Configuration (expansion budget).
	bestG    map[S]float64  // Explored map: state → best known g.
	pq       frontier[S, A] // Min-heap frontier under lazy decrease-key.
	seq      uint64         // Monotone insertion counter for FIFO ties.
	expanded int            // Count of node expansions performed.
}

// init creates the root node from InitialState with g=0, records it in the
// explored map, and pushes it onto the frontier.
func (r *runner[S, A]) init() error {
	start := r.problem.InitialState()

	// Root heuristic; any Problem failure aborts the run immediately.
	h, err := r.heuristic(start)
	if err != nil {
		return err
	}

	root := &Node[S, A]{State: start, G: 0, H: h}
	r.bestG[start] = 0
	heap.Init(&r.pq)
	r.push(root)

	return nil
}

// push inserts a node into the frontier with the next sequence number.
func (r *runner[S, A]) push(n *Node[S, A]) {
	heap.Push(&r.pq, &frontierEntry[S, A]{node: n, f: n.F(), seq: r.seq})
	r.seq++
}

// process is the core best-first loop: dequeue the minimum-f node, test the
// goal, otherwise expand it and enqueue improving children.
func (r *runner[S, A]) process() (*Node[S, A], error) {
	for r.pq.Len() > 0 {
		// 1) Remove the minimum-f entry (ties broken by insertion order).
		entry := heap.Pop(&r.pq).(*frontierEntry[S, A])
		n := entry.node

		// 2) Skip stale entries: a strictly cheaper path to this state was
		//    discovered after this entry was pushed (lazy decrease-key).
		if best, ok := r.bestG[n.State]; ok && n.G > best {
			continue
		}

		// 3) Goal test on dequeue, not on generation: the first goal node
		//    dequeued has minimal f among all goal nodes discovered.
		if r.problem.IsGoal(n.State) {
			return n, nil
		}

		// 4) Enforce the optional expansion budget.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, ErrBudgetExhausted
		}
		r.expanded++

		// 5) Expand: generate and enqueue improving successors.
		if err := r.expand(n); err != nil {
			return nil, err
		}
	}

	// Frontier emptied with no goal dequeued: the reportable soft failure.
	return nil, ErrNoSolution
}

// expand generates the successors of n and enqueues every child whose
// tentative g improves on the best known g for its state.
func (r *runner[S, A]) expand(n *Node[S, A]) error {
	var (
		a    A
		next S
		step float64
		h    float64
		err  error
	)
	for _, a = range r.problem.Actions(n.State) {
		// a) Apply the action; a failing transition is a malformed problem.
		next, err = r.problem.Result(n.State, a)
		if err != nil {
			return fmt.Errorf("search: result of action %v in state %v: %w", a, n.State, err)
		}

		// b) Transition cost; fail fast on undefined or negative costs.
		step, err = r.problem.Cost(n.State, a, next)
		if err != nil {
			return fmt.Errorf("search: cost of action %v in state %v: %w", a, n.State, err)
		}
		if step < 0 || math.IsNaN(step) {
			return fmt.Errorf("%w: action %v in state %v (cost=%v)", ErrNegativeCost, a, n.State, step)
		}

		// c) Reopening rule: enqueue iff the state is unseen or reached
		//    via a strictly cheaper path.
		tentative := n.G + step
		if best, ok := r.bestG[next]; ok && tentative >= best {
			continue
		}

		// d) Heuristic is computed once, at node creation.
		h, err = r.heuristic(next)
		if err != nil {
			return err
		}

		r.bestG[next] = tentative
		r.push(&Node[S, A]{
			State:  next,
			Parent: n,
			Action: a,
			G:      tentative,
			H:      h,
		})
	}

	return nil
}

// heuristic evaluates Problem.Heuristic and enforces the non-negative,
// non-NaN contract.
func (r *runner[S, A]) heuristic(s S) (float64, error) {
	h, err := r.problem.Heuristic(s)
	if err != nil {
		return 0, fmt.Errorf("search: heuristic of state %v: %w", s, err)
	}
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: state %v (h=%v)", ErrNegativeHeuristic, s, h)
	}

	return h, nil
}
