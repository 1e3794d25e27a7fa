// Package grid implements the N x N board of candidate sets that the solver
// operates on: allocation, deep copy, and the single iterator that exposes
// every row, column, and block as a unit.
package grid

import (
	"fmt"

	"github.com/gridcolor/sudoku/pset"
)

// ErrInvalidSize is returned by Alloc when n is not a perfect-square puzzle
// size from the fixed set the solver supports.
var ErrInvalidSize = fmt.Errorf("grid: size must be one of %v", allowedSizes)

var allowedSizes = [...]int{1, 4, 9, 16, 25, 36, 49, 64}

// ValidSize reports whether n is an allowed board size.
func ValidSize(n int) bool {
	for _, v := range allowedSizes {
		if v == n {
			return true
		}
	}
	return false
}

// Grid is an N x N board of candidate sets, stored as a flat row-major
// buffer. BlockSize is sqrt(N); a grid's size never changes after Alloc.
type Grid struct {
	N         int
	BlockSize int
	cells     []pset.Set
}

// Alloc creates a new N x N grid with every cell set to full(n). It returns
// ErrInvalidSize if n is not one of the supported board sizes.
func Alloc(n int) (*Grid, error) {
	if !ValidSize(n) {
		return nil, ErrInvalidSize
	}
	g := &Grid{
		N:         n,
		BlockSize: isqrt(n),
		cells:     make([]pset.Set, n*n),
	}
	full := pset.Full(n)
	for i := range g.cells {
		g.cells[i] = full
	}
	return g, nil
}

func isqrt(n int) int {
	for r := 1; r*r <= n; r++ {
		if r*r == n {
			return r
		}
	}
	return 1
}

func (g *Grid) index(r, c int) int {
	return r*g.N + c
}

// At returns the candidate set at (r, c).
func (g *Grid) At(r, c int) pset.Set {
	return g.cells[g.index(r, c)]
}

// Put replaces the candidate set at (r, c).
func (g *Grid) Put(r, c int, s pset.Set) {
	g.cells[g.index(r, c)] = s
}

// Copy returns a deep, independent clone of g.
func (g *Grid) Copy() *Grid {
	out := &Grid{
		N:         g.N,
		BlockSize: g.BlockSize,
		cells:     make([]pset.Set, len(g.cells)),
	}
	copy(out.cells, g.cells)
	return out
}

// CopyFrom overwrites every cell of g with the corresponding cell of src.
// g and src must have the same N; used by the choice stack to restore a
// working grid from a snapshot without reallocating.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// WellFormed reports whether every cell holds at least one candidate.
func (g *Grid) WellFormed() bool {
	for _, s := range g.cells {
		if s.IsEmpty() {
			return false
		}
	}
	return true
}

// Cell is a reference to one position of a grid, used by unit iteration.
type Cell struct {
	Row, Col int
}

// Unit is an ordered sequence of the N cell positions making up one row,
// column, or block.
type Unit []Cell

// Get returns the candidate set currently held at position i of u within g.
func (u Unit) Get(g *Grid, i int) pset.Set {
	return g.At(u[i].Row, u[i].Col)
}

// Put writes the candidate set at position i of u within g.
func (u Unit) Put(g *Grid, i int, s pset.Set) {
	g.Put(u[i].Row, u[i].Col, s)
}

// Row returns the unit for absolute row r.
func (g *Grid) Row(r int) Unit {
	u := make(Unit, g.N)
	for c := 0; c < g.N; c++ {
		u[c] = Cell{Row: r, Col: c}
	}
	return u
}

// Col returns the unit for absolute column c.
func (g *Grid) Col(c int) Unit {
	u := make(Unit, g.N)
	for r := 0; r < g.N; r++ {
		u[r] = Cell{Row: r, Col: c}
	}
	return u
}

// Block returns the unit for block k (0 <= k < N), laid out row-major
// within the block.
func (g *Grid) Block(k int) Unit {
	bs := g.BlockSize
	rowBase := (k / bs) * bs
	colBase := (k % bs) * bs
	u := make(Unit, 0, g.N)
	for r := rowBase; r < rowBase+bs; r++ {
		for c := colBase; c < colBase+bs; c++ {
			u = append(u, Cell{Row: r, Col: c})
		}
	}
	return u
}

// Units returns all 3N units of g, in the deterministic order the
// propagation engine relies on: rows 0..N-1, then columns 0..N-1, then
// blocks 0..N-1.
func (g *Grid) Units() []Unit {
	units := make([]Unit, 0, 3*g.N)
	for r := 0; r < g.N; r++ {
		units = append(units, g.Row(r))
	}
	for c := 0; c < g.N; c++ {
		units = append(units, g.Col(c))
	}
	for k := 0; k < g.N; k++ {
		units = append(units, g.Block(k))
	}
	return units
}

// BlockIndex returns the block number (0 <= k < N) that (r, c) belongs to.
func (g *Grid) BlockIndex(r, c int) int {
	bs := g.BlockSize
	return (r/bs)*bs + (c / bs)
}
