// Package search implements the depth-first backtracking driver: it calls
// the heuristic engine, branches through the choice stack when propagation
// stalls, and backtracks when propagation finds a contradiction.
package search

import (
	"math/rand"

	"github.com/gridcolor/sudoku/choicestack"
	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/heuristics"
)

// BranchFunc is called immediately after a branch is committed.
type BranchFunc func(depth int, row, col int)

// BacktrackFunc is called immediately after a contradiction is resolved by
// popping the choice stack.
type BacktrackFunc func(depth int)

// Options configures one search run.
type Options struct {
	// Random selects the branching-cell policy passed to the choice
	// stack: lexicographic when false, uniformly random when true.
	Random bool
	// RNG supplies randomness when Random is true. It must be non-nil in
	// that case and must be seeded exactly once by the caller.
	RNG *rand.Rand
	// OnRound, when non-nil, is invoked once per completed propagation
	// pass, for verbose tracing.
	OnRound heuristics.RoundHook
	// OnBranch, when non-nil, is invoked after every branch.
	OnBranch BranchFunc
	// OnBacktrack, when non-nil, is invoked after every backtrack.
	OnBacktrack BacktrackFunc
	// Limit bounds Count's enumeration: once the running count reaches
	// Limit, Count returns early. Zero means unbounded.
	Limit int
}

// Solve runs the heuristics-branch-backtrack loop to completion. It reports
// true and leaves g holding a completion when a solution is found, false
// if the puzzle is unsolvable.
func Solve(g *grid.Grid, opts Options) bool {
	stack := choicestack.New(opts.Random, opts.RNG)
	for {
		switch heuristics.Propagate(g, opts.OnRound) {
		case heuristics.Solved:
			stack.Free()
			return true
		case heuristics.Stuck:
			if !stack.Push(g) {
				stack.Free()
				return false
			}
			if opts.OnBranch != nil {
				top := stack.Peek()
				opts.OnBranch(stack.Depth(), top.Row, top.Col)
			}
		case heuristics.Inconsistent:
			if stack.Depth() == 0 {
				stack.Free()
				return false
			}
			stack.Pop(g)
			if opts.OnBacktrack != nil {
				opts.OnBacktrack(stack.Depth())
			}
		}
	}
}

// Count runs the same loop as Solve but enumerates every completion of g,
// used by the generator's strict uniqueness check. It returns as soon as
// the choice stack empties after a Solved result or an unresolved
// Inconsistent result, or once opts.Limit solutions have been found.
func Count(g *grid.Grid, opts Options) int {
	stack := choicestack.New(opts.Random, opts.RNG)
	count := 0
	for {
		switch heuristics.Propagate(g, opts.OnRound) {
		case heuristics.Solved:
			count++
			if opts.Limit > 0 && count >= opts.Limit {
				stack.Free()
				return count
			}
			if stack.Depth() == 0 {
				stack.Free()
				return count
			}
			stack.Pop(g)
			if opts.OnBacktrack != nil {
				opts.OnBacktrack(stack.Depth())
			}
		case heuristics.Stuck:
			if !stack.Push(g) {
				stack.Free()
				return count
			}
			if opts.OnBranch != nil {
				top := stack.Peek()
				opts.OnBranch(stack.Depth(), top.Row, top.Col)
			}
		case heuristics.Inconsistent:
			if stack.Depth() == 0 {
				stack.Free()
				return count
			}
			stack.Pop(g)
			if opts.OnBacktrack != nil {
				opts.OnBacktrack(stack.Depth())
			}
		}
	}
}
