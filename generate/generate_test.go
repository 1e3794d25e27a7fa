package generate

import (
	"math/rand"
	"testing"

	"github.com/gridcolor/sudoku/consistency"
	"github.com/gridcolor/sudoku/search"
)

func TestGenerateInvalidSize(t *testing.T) {
	if _, err := Generate(7, Default, rand.New(rand.NewSource(1)), Trace{}); err == nil {
		t.Fatalf("Generate(7, ...) should fail: 7 is not an allowed board size")
	}
}

func TestGenerateDefaultModeBlankCount(t *testing.T) {
	res, err := Generate(4, Default, rand.New(rand.NewSource(42)), Trace{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := (2 * 4 * 4) / 3
	got := 0
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if res.Puzzle.At(r, c).Cardinality() == 4 {
				got++
			}
		}
	}
	if got != want {
		t.Errorf("blank cells = %d, want %d", got, want)
	}
}

func TestGenerateSolutionIsSolved(t *testing.T) {
	res, err := Generate(4, Default, rand.New(rand.NewSource(3)), Trace{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !consistency.Solved(res.Solution) {
		t.Errorf("generated solution is not a solved grid")
	}
	if res.ID == "" {
		t.Errorf("expected a non-empty run ID")
	}
}

func TestGeneratePuzzleHasACompletion(t *testing.T) {
	res, err := Generate(4, Default, rand.New(rand.NewSource(9)), Trace{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	working := res.Puzzle.Copy()
	if !search.Solve(working, search.Options{}) {
		t.Errorf("generated puzzle has no completion")
	}
}

func TestGenerateStrictModeProducesUniquePuzzle(t *testing.T) {
	res, err := Generate(4, Strict, rand.New(rand.NewSource(11)), Trace{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	countCopy := res.Puzzle.Copy()
	if got := search.Count(countCopy, search.Options{Limit: 2}); got != 1 {
		t.Errorf("strict-mode puzzle has %d completions, want 1", got)
	}
}
