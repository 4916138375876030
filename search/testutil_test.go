// Package search_test provides lightweight testing helpers shared across
// *_test.go files in this package: a small explicit-graph Problem whose
// expansion order follows the stored edge order, which makes tie-breaking
// and determinism assertions exact.
package search_test

import (
	"errors"
	"fmt"
	"testing"
)

// edge is a weighted directed edge of the test graph.
type edge struct {
	to string
	w  float64
}

// graphProblem is a deterministic state space over an explicit digraph.
// States are vertex names; actions are destination vertex names in the
// stored edge order; goal membership is a set.
type graphProblem struct {
	start string
	goals map[string]bool
	edges map[string][]edge
	h     map[string]float64 // optional; absent vertices estimate 0
}

func (p *graphProblem) InitialState() string { return p.start }

func (p *graphProblem) IsGoal(s string) bool { return p.goals[s] }

func (p *graphProblem) Actions(s string) []string {
	out := make([]string, 0, len(p.edges[s]))
	for _, e := range p.edges[s] {
		out = append(out, e.to)
	}

	return out
}

func (p *graphProblem) Result(s, a string) (string, error) {
	for _, e := range p.edges[s] {
		if e.to == a {
			return e.to, nil
		}
	}

	return "", fmt.Errorf("no edge %s→%s", s, a)
}

func (p *graphProblem) Cost(s, a, next string) (float64, error) {
	for _, e := range p.edges[s] {
		if e.to == a {
			return e.w, nil
		}
	}

	return 0, fmt.Errorf("no edge %s→%s", s, a)
}

func (p *graphProblem) Heuristic(s string) (float64, error) { return p.h[s], nil }

// errBrokenTransition is the sentinel surfaced by failingProblem.Result.
var errBrokenTransition = errors.New("broken transition")

// failingProblem advertises one action but fails to apply it, exercising
// the engine's error propagation for malformed problems.
type failingProblem struct{}

func (failingProblem) InitialState() string    { return "A" }
func (failingProblem) IsGoal(string) bool      { return false }
func (failingProblem) Actions(string) []string { return []string{"B"} }
func (failingProblem) Result(string, string) (string, error) {
	return "", errBrokenTransition
}
func (failingProblem) Cost(string, string, string) (float64, error) { return 1, nil }
func (failingProblem) Heuristic(string) (float64, error)            { return 0, nil }

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrNoSolution, ErrNegativeCost, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustEqualStrings asserts exact equality of two string slices.
func mustEqualStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
		}
	}
}
