package pset

import "testing"

func TestFullCardinality(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"n=1", 1, 1},
		{"n=4", 4, 4},
		{"n=9", 9, 9},
		{"n=64", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Full(tt.n).Cardinality(); got != tt.want {
				t.Errorf("Full(%d).Cardinality() = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestEmptyCardinality(t *testing.T) {
	if got := Empty().Cardinality(); got != 0 {
		t.Errorf("Empty().Cardinality() = %d, want 0", got)
	}
}

func TestSingletonMatchesCardinalityOne(t *testing.T) {
	if Empty().Singleton() {
		t.Errorf("Empty().Singleton() = true, want false")
	}
	if !OfChar('5').Singleton() {
		t.Errorf("OfChar('5').Singleton() = false, want true")
	}
	if Full(9).Singleton() {
		t.Errorf("Full(9).Singleton() = true, want false")
	}
}

func TestSubset(t *testing.T) {
	a := OfChar('1').Or(OfChar('2'))
	b := Full(9)
	if !a.Subset(b) {
		t.Errorf("expected {1,2} subset of full(9)")
	}
	if b.Subset(a) {
		t.Errorf("did not expect full(9) subset of {1,2}")
	}
}

func TestOfCharRoundTrip(t *testing.T) {
	for i := 0; i < MaxColors; i++ {
		c := Alphabet[i]
		s := OfChar(c)
		if got := s.ToString(); got != string(c) {
			t.Errorf("ToString(OfChar(%q)) = %q, want %q", c, got, string(c))
		}
	}
}

func TestOfCharBlankAndUnknown(t *testing.T) {
	if !OfChar('_').IsEmpty() {
		t.Errorf("OfChar('_') should be empty")
	}
	if !OfChar('?').IsEmpty() {
		t.Errorf("OfChar of an unknown char should be empty")
	}
}

func TestLeftmost(t *testing.T) {
	s := OfChar('3').Or(OfChar('7'))
	lm := s.Leftmost()
	if !lm.Singleton() {
		t.Errorf("Leftmost(s) should be a singleton")
	}
	if !lm.Subset(s) {
		t.Errorf("Leftmost(s) should be a subset of s")
	}
	if got, want := s.AndNot(lm).Cardinality(), s.Cardinality()-1; got != want {
		t.Errorf("cardinality(s andnot leftmost(s)) = %d, want %d", got, want)
	}
}

func TestLeftmostOfEmpty(t *testing.T) {
	if !Empty().Leftmost().IsEmpty() {
		t.Errorf("Leftmost(Empty()) should be Empty()")
	}
}

func TestComplement(t *testing.T) {
	s := OfChar('1').Or(OfChar('2'))
	c := s.Complement(9)
	if got, want := c.Cardinality(), 7; got != want {
		t.Errorf("complement cardinality = %d, want %d", got, want)
	}
	if !c.And(s).IsEmpty() {
		t.Errorf("complement should share no colors with s")
	}
	if !c.Or(s).Equal(Full(9)) {
		t.Errorf("s or complement(s) should equal full(9)")
	}
}

func TestAndOrXor(t *testing.T) {
	a := OfChar('1').Or(OfChar('2')).Or(OfChar('3'))
	b := OfChar('2').Or(OfChar('3')).Or(OfChar('4'))

	and := a.And(b)
	if got := and.ToString(); got != "23" {
		t.Errorf("a and b = %q, want %q", got, "23")
	}

	or := a.Or(b)
	if got := or.ToString(); got != "1234" {
		t.Errorf("a or b = %q, want %q", got, "1234")
	}

	xor := a.Xor(b)
	if got := xor.ToString(); got != "14" {
		t.Errorf("a xor b = %q, want %q", got, "14")
	}
}

func TestColors(t *testing.T) {
	s := OfChar('A').Or(OfChar('1'))
	colors := s.Colors()
	if len(colors) != 2 || colors[0] != 0 || colors[1] != 9 {
		t.Errorf("Colors() = %v, want [0 9]", colors)
	}
}
