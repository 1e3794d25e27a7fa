// Package generate implements the puzzle generator: solve an empty grid
// under random branching to get a random completion, then erase cells
// either to a fixed fraction (default mode) or for as long as uniqueness
// holds (strict mode).
package generate

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/heuristics"
	"github.com/gridcolor/sudoku/pset"
	"github.com/gridcolor/sudoku/search"
)

// Mode selects the erasure policy.
type Mode int

const (
	// Default blanks a fixed fraction (floor(2*N^2/3)) of cells.
	Default Mode = iota
	// Strict erases cells only while the grid keeps a unique completion.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "default"
}

// Result is one generated puzzle.
type Result struct {
	// ID is a run identifier assigned to this generation, suitable as a
	// correlation ID in logs or an archive primary key.
	ID string
	Mode Mode
	// Solution is the full random completion the generator found.
	Solution *grid.Grid
	// Puzzle is the erased grid to present to a solver.
	Puzzle *grid.Grid
}

// Trace, when supplied to Generate, is invoked at notable points of
// generation for verbose tracing; any field may be nil.
type Trace struct {
	OnRound     heuristics.RoundHook
	OnBranch    search.BranchFunc
	OnBacktrack search.BacktrackFunc
}

// Generate produces one puzzle of size n. rng must be seeded exactly once
// by the caller (the generator itself never reseeds, per the design note
// that fast-hardware double-seeding from wall-clock time is a bug to
// avoid).
func Generate(n int, mode Mode, rng *rand.Rand, trace Trace) (*Result, error) {
	g, err := grid.Alloc(n)
	if err != nil {
		return nil, err
	}

	solveOpts := search.Options{
		Random:      true,
		RNG:         rng,
		OnRound:     trace.OnRound,
		OnBranch:    trace.OnBranch,
		OnBacktrack: trace.OnBacktrack,
	}
	if !search.Solve(g, solveOpts) {
		return nil, fmt.Errorf("generate: size %d: random completion search failed to converge", n)
	}
	solution := g.Copy()

	perm := rng.Perm(n * n)
	full := pset.Full(n)

	switch mode {
	case Default:
		eraseCount := (2 * n * n) / 3
		for i := 0; i < eraseCount && i < len(perm); i++ {
			r, c := perm[i]/n, perm[i]%n
			g.Put(r, c, full)
		}
	case Strict:
		for _, idx := range perm {
			r, c := idx/n, idx%n
			saved := g.At(r, c)
			g.Put(r, c, full)
			if uniqueCompletion(g) {
				continue
			}
			g.Put(r, c, saved)
			break
		}
	}

	return &Result{
		ID:       uuid.NewString(),
		Mode:     mode,
		Solution: solution,
		Puzzle:   g,
	}, nil
}

// uniqueCompletion reports whether g still has exactly one completion.
// Heuristics-alone success is a cheap short-circuit (if propagation solves
// g outright, the completion is trivially unique); otherwise it falls back
// to the authoritative backtracking count. Mirrors the original generator's
// `grid_heuristics(...) == 0 || number_of_solutions(...) == 1` short-circuit:
// the heuristic check speeds up the common case, it never substitutes for
// the count in the case it's meant to cover (a grid that needs backtracking
// but still has a unique completion).
func uniqueCompletion(g *grid.Grid) bool {
	heuristicCopy := g.Copy()
	if heuristics.Propagate(heuristicCopy, nil) == heuristics.Solved {
		return true
	}
	return search.Count(g.Copy(), search.Options{Limit: 2}) == 1
}
