// Package consistency implements the pure, side-effect-free checks that
// tell the heuristic engine and search driver whether a grid can still lead
// to a solution, and whether it already is one.
package consistency

import (
	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/pset"
)

// Consistent reports whether g is consistent: no unit has an empty cell, no
// unit has two distinct positions holding the same singleton, and every
// unit's cells still union to the full color range. Any empty cell makes a
// grid inconsistent, regardless of which unit it belongs to.
func Consistent(g *grid.Grid) bool {
	if !g.WellFormed() {
		return false
	}
	for _, u := range g.Units() {
		if !unitConsistent(g, u) {
			return false
		}
	}
	return true
}

func unitConsistent(g *grid.Grid, u grid.Unit) bool {
	seen := pset.Empty()
	union := pset.Empty()
	for i := range u {
		cell := u.Get(g, i)
		if cell.IsEmpty() {
			return false
		}
		if cell.Singleton() {
			if !seen.And(cell).IsEmpty() {
				return false
			}
			seen = seen.Or(cell)
		}
		union = union.Or(cell)
	}
	return union.Equal(pset.Full(g.N))
}

// Solved reports whether every cell of g is a singleton and every unit is a
// permutation of the N colors (the xor of its singletons equals full(N)).
func Solved(g *grid.Grid) bool {
	for _, u := range g.Units() {
		xor := pset.Empty()
		for i := range u {
			cell := u.Get(g, i)
			if !cell.Singleton() {
				return false
			}
			xor = xor.Xor(cell)
		}
		if !xor.Equal(pset.Full(g.N)) {
			return false
		}
	}
	return true
}
