// Package choicestack implements the backtracking frames the search driver
// pushes when propagation stalls and pops when it hits a contradiction.
// Each frame owns one deep snapshot of the grid taken immediately before
// its branch was committed.
package choicestack

import (
	"math/rand"

	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/pset"
)

// Record is one backtracking frame: the grid as it stood before the
// branch, the branched cell, and the singleton candidate committed there.
type Record struct {
	snapshot *grid.Grid
	Row      int
	Col      int
	Tried    pset.Set
}

// Stack is a LIFO sequence of choice records.
type Stack struct {
	records []*Record
	random  bool
	rng     *rand.Rand
}

// New creates an empty choice stack. random selects the branching-cell
// policy: lexicographic (row, col) order when false, uniformly random among
// the minimum-cardinality cells when true. rng is only consulted when
// random is true, and should be seeded exactly once by the caller.
func New(random bool, rng *rand.Rand) *Stack {
	return &Stack{random: random, rng: rng}
}

// Depth returns the number of outstanding guesses.
func (s *Stack) Depth() int {
	return len(s.records)
}

type candidate struct {
	row, col int
}

// Push finds an unsolved cell with minimum cardinality >= 2 (the first in
// (row, col) order, or a uniformly random one under the random policy),
// snapshots g, commits that cell's leftmost candidate into g, and records
// the frame. It returns false, leaving the
// stack and g unchanged, if no branchable cell exists.
func (s *Stack) Push(g *grid.Grid) bool {
	minCard := -1
	var candidates []candidate
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			card := g.At(r, c).Cardinality()
			if card < 2 {
				continue
			}
			switch {
			case minCard == -1 || card < minCard:
				minCard = card
				candidates = candidates[:0]
				candidates = append(candidates, candidate{r, c})
			case card == minCard:
				candidates = append(candidates, candidate{r, c})
			}
		}
	}
	if len(candidates) == 0 {
		return false
	}

	chosen := candidates[0]
	if s.random {
		chosen = candidates[s.rng.Intn(len(candidates))]
	}

	snapshot := g.Copy()
	tried := g.At(chosen.row, chosen.col).Leftmost()
	g.Put(chosen.row, chosen.col, tried)

	s.records = append(s.records, &Record{
		snapshot: snapshot,
		Row:      chosen.row,
		Col:      chosen.col,
		Tried:    tried,
	})
	return true
}

// Pop restores g from the top snapshot, then eliminates the already-tried
// candidate from the restored cell, and discards the frame. It returns
// false if the stack was already empty.
func (s *Stack) Pop(g *grid.Grid) bool {
	if len(s.records) == 0 {
		return false
	}
	top := s.records[len(s.records)-1]
	s.records = s.records[:len(s.records)-1]

	g.CopyFrom(top.snapshot)
	remaining := g.At(top.Row, top.Col).AndNot(top.Tried)
	g.Put(top.Row, top.Col, remaining)
	return true
}

// Free releases every outstanding snapshot.
func (s *Stack) Free() {
	s.records = nil
}

// Peek returns the top record, or nil if the stack is empty. Used by
// callers that want to log the branch just taken.
func (s *Stack) Peek() *Record {
	if len(s.records) == 0 {
		return nil
	}
	return s.records[len(s.records)-1]
}
