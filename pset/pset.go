// Package pset implements the candidate-set algebra at the heart of the
// solver: a pure, value-semantics bitmask over the fixed 64-symbol color
// alphabet. A Set never carries more than 64 bits of state; grids are
// responsible for keeping bits at index >= N clear.
package pset

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Alphabet maps a color index to its printable character. Index 0 is '1',
// index 8 is '9', index 9 is 'A', and so on through the 64th symbol '*'.
const Alphabet = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz@&*"

// MaxColors is the width of the fixed machine word backing every Set.
const MaxColors = 64

// Blank is the textual placeholder for "any of the N colors".
const Blank = '_'

// Set is a subset of [0, MaxColors) of candidate colors. The zero value is
// not valid; use Empty, Full, or OfChar to construct one.
type Set struct {
	bits *bitset.BitSet
}

func newBits() *bitset.BitSet {
	return bitset.New(MaxColors)
}

// Empty returns the pset containing no colors.
func Empty() Set {
	return Set{bits: newBits()}
}

// Full returns the pset containing colors [0, n).
func Full(n int) Set {
	b := newBits()
	for c := 0; c < n; c++ {
		b.Set(uint(c))
	}
	return Set{bits: b}
}

// OfChar returns the singleton pset for the color at c's position in
// Alphabet, or Empty if c is Blank or not among the first MaxColors
// alphabet characters.
func OfChar(c byte) Set {
	if c == Blank {
		return Empty()
	}
	idx := strings.IndexByte(Alphabet, c)
	if idx < 0 || idx >= MaxColors {
		return Empty()
	}
	b := newBits()
	b.Set(uint(idx))
	return Set{bits: b}
}

// ToString renders every color in s, in ascending index order.
func (s Set) ToString() string {
	var sb strings.Builder
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		sb.WriteByte(Alphabet[i])
	}
	return sb.String()
}

// Set returns s with color c added.
func (s Set) Set(c int) Set {
	b := s.bits.Clone()
	b.Set(uint(c))
	return Set{bits: b}
}

// Discard returns s with color c removed.
func (s Set) Discard(c int) Set {
	b := s.bits.Clone()
	b.Clear(uint(c))
	return Set{bits: b}
}

// Has reports whether color c is a candidate in s.
func (s Set) Has(c int) bool {
	return s.bits.Test(uint(c))
}

// And returns the intersection of s and o.
func (s Set) And(o Set) Set {
	return Set{bits: s.bits.Intersection(o.bits)}
}

// Or returns the union of s and o.
func (s Set) Or(o Set) Set {
	return Set{bits: s.bits.Union(o.bits)}
}

// Xor returns the symmetric difference of s and o.
func (s Set) Xor(o Set) Set {
	return Set{bits: s.bits.SymmetricDifference(o.bits)}
}

// AndNot returns s with every color of o removed.
func (s Set) AndNot(o Set) Set {
	return Set{bits: s.bits.Difference(o.bits)}
}

// Complement returns full(n) xor s: every color in [0, n) not in s.
func (s Set) Complement(n int) Set {
	return s.Xor(Full(n))
}

// Subset reports whether every color in s is also in o, i.e. s|o == o.
func (s Set) Subset(o Set) bool {
	return s.Or(o).Equal(o)
}

// Equal reports whether s and o contain exactly the same colors.
func (s Set) Equal(o Set) bool {
	return s.bits.Equal(o.bits)
}

// IsEmpty reports whether s contains no colors.
func (s Set) IsEmpty() bool {
	return s.bits.None()
}

// Singleton reports whether s contains exactly one color. Per the resolved
// Open Question in the specification, the empty set is never a singleton.
func (s Set) Singleton() bool {
	return s.Cardinality() == 1
}

// Cardinality returns the number of colors in s.
func (s Set) Cardinality() int {
	return int(s.bits.Count())
}

// Leftmost returns the singleton pset holding only the lowest-index color
// of s, or Empty if s is empty.
func (s Set) Leftmost() Set {
	i, ok := s.bits.NextSet(0)
	if !ok {
		return Empty()
	}
	b := newBits()
	b.Set(i)
	return Set{bits: b}
}

// Colors returns the color indices present in s, in ascending order.
func (s Set) Colors() []int {
	out := make([]int, 0, s.Cardinality())
	for i, e := s.bits.NextSet(0); e; i, e = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
