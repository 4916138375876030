// Package search - sentinel errors and configuration options for the
// best-first engine.
//
// Options follow the functional-options pattern: start from DefaultOptions
// and override via With* constructors. Option constructors panic on values
// that can never be valid (programmer error), while all data-dependent
// failures surface as sentinel errors from Solve.
package search

import "errors"

// Sentinel errors returned by the search engine.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Solve.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoSolution indicates that the frontier emptied before any goal
	// state was dequeued. This is the expected "no route found" outcome,
	// not a precondition violation.
	ErrNoSolution = errors.New("search: frontier exhausted without reaching a goal")

	// ErrBudgetExhausted indicates that the configured expansion budget
	// (MaxExpansions) was spent before a goal state was dequeued.
	ErrBudgetExhausted = errors.New("search: expansion budget exhausted before reaching a goal")

	// ErrNegativeCost indicates that Problem.Cost returned a negative or
	// NaN step cost. Best-first search is undefined under negative costs,
	// so the run aborts immediately.
	ErrNegativeCost = errors.New("search: negative or NaN step cost")

	// ErrNegativeHeuristic indicates that Problem.Heuristic returned a
	// negative or NaN estimate.
	ErrNegativeHeuristic = errors.New("search: negative or NaN heuristic estimate")

	// ErrBadMaxExpansions indicates that WithMaxExpansions was handed a
	// negative budget.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Options configures a single Solve run.
//
// MaxExpansions – optional cap on the number of node expansions (dequeues of
// live, non-goal nodes). 0 means unbounded, the reference behavior: the loop
// runs until success or frontier exhaustion.
type Options struct {
	MaxExpansions int // Maximum node expansions; 0 = no limit.
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions performed by Solve.
// When the cap is reached without dequeuing a goal, Solve returns
// ErrBudgetExhausted. Must pass a non-negative value; negative values cause
// a panic with ErrBadMaxExpansions.
// Default (if not set) is 0 (unbounded).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early; a negative budget
			// is a programmer error, never valid input.
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns an Options struct initialized with the reference
// behavior: no expansion budget, run until success or exhaustion.
func DefaultOptions() Options {
	return Options{
		MaxExpansions: 0,
	}
}
