package gridio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gridcolor/sudoku/heuristics"
)

func TestParseSingletonTrivial(t *testing.T) {
	g, err := Parse(strings.NewReader("5"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if g.N != 1 {
		t.Fatalf("N = %d, want 1", g.N)
	}
	if heuristics.Propagate(g, nil) != heuristics.Solved {
		t.Fatalf("expected already solved")
	}

	var buf bytes.Buffer
	if err := Format(&buf, g); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1" {
		t.Errorf("Format() = %q, want %q", got, "1")
	}
}

func TestParseAlreadySolved4x4(t *testing.T) {
	input := "1234\n3412\n2143\n4321\n"
	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if heuristics.Propagate(g, nil) != heuristics.Solved {
		t.Fatalf("expected already solved")
	}
}

func TestParseIgnoresCommentsAndWhitespace(t *testing.T) {
	input := "# a comment\n\n 1 2 3 4 \n3412\n2143\n4321 # trailing\n"
	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if g.N != 4 {
		t.Fatalf("N = %d, want 4", g.N)
	}
}

func TestParseRejectsBadLineLength(t *testing.T) {
	input := "1234\n341\n2143\n4321\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected an error for a short data line")
	}
}

func TestParseRejectsBadCharacter(t *testing.T) {
	input := "1234\n34?2\n2143\n4321\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected an error for an invalid character")
	}
}

func TestParseRejectsUnsupportedSize(t *testing.T) {
	input := "123\n123\n123\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected an error for size 3")
	}
}

func TestParseRejectsWrongLineCount(t *testing.T) {
	input := "1234\n3412\n2143\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("expected an error for too few data lines")
	}
}

func TestParseClassicEasyPuzzle(t *testing.T) {
	input := strings.Join([]string{
		"53__7____",
		"6__195___",
		"_98____6_",
		"8___6___3",
		"4__8_3__1",
		"7___2___6",
		"_6____28_",
		"___419__5",
		"____8__79",
	}, "\n") + "\n"

	g, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if heuristics.Propagate(g, nil) != heuristics.Solved {
		t.Fatalf("expected solvable by heuristics alone")
	}
	var firstRow string
	for c := 0; c < 9; c++ {
		firstRow += g.At(0, c).ToString()
	}
	if want := "534678912"; firstRow != want {
		t.Errorf("first row = %q, want %q", firstRow, want)
	}
}

func TestFormatPadsToMaxCardinality(t *testing.T) {
	g, err := Parse(strings.NewReader("5"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	var buf bytes.Buffer
	if err := Format(&buf, g); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if got := buf.String(); got != "1 \n" {
		t.Errorf("Format() = %q, want %q", got, "1 \n")
	}
}

func TestFormatSummary(t *testing.T) {
	if got := FormatSummary(1234); got != "tried 1,234 candidates" {
		t.Errorf("FormatSummary(1234) = %q", got)
	}
}
