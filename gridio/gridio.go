// Package gridio implements the textual grid format described by the
// external interface section of the specification: a line-oriented parser
// and a padded, whitespace-separated printer. It depends on grid and pset;
// neither of those packages knows gridio exists.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/pset"
)

// ErrMalformedInput is wrapped by every error Parse returns for bad input:
// wrong character, wrong line length, wrong line count, or an unsupported
// size.
var ErrMalformedInput = errors.New("gridio: malformed input")

// Parse reads a textual grid. Spaces and tabs are ignored within a line;
// '#' begins a comment that runs to end of line; blank lines are skipped.
// The puzzle size N is taken from the length of the first data line and
// must be one of the supported board sizes; every data line must then have
// exactly N cell characters, and there must be exactly N data lines.
func Parse(r io.Reader) (*grid.Grid, error) {
	lines, err := readDataLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no data lines", ErrMalformedInput)
	}

	n := len(lines[0])
	if !grid.ValidSize(n) {
		return nil, fmt.Errorf("%w: size %d is not a supported board size", ErrMalformedInput, n)
	}
	if len(lines) != n {
		return nil, fmt.Errorf("%w: expected %d data lines, got %d", ErrMalformedInput, n, len(lines))
	}

	g, err := grid.Alloc(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	for row, line := range lines {
		if len(line) != n {
			return nil, fmt.Errorf("%w: line %d has length %d, want %d", ErrMalformedInput, row+1, len(line), n)
		}
		for col := 0; col < n; col++ {
			ch := line[col]
			if ch == pset.Blank {
				g.Put(row, col, pset.Full(n))
				continue
			}
			idx := strings.IndexByte(pset.Alphabet, ch)
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: invalid character %q at line %d, column %d", ErrMalformedInput, ch, row+1, col+1)
			}
			g.Put(row, col, pset.OfChar(ch))
		}
	}
	return g, nil
}

func readDataLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		raw := scanner.Text()
		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		var sb strings.Builder
		for i := 0; i < len(raw); i++ {
			if raw[i] == ' ' || raw[i] == '\t' {
				continue
			}
			sb.WriteByte(raw[i])
		}
		line := sb.String()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return lines, nil
}

// Format writes g in the padded output format: one whitespace-separated
// field per cell, rows on separate lines. A fully unconstrained cell
// (full(N)) prints as '_'. Every field is padded to the same width: the
// largest cell cardinality in the grid (or 1, if every cell is full), plus
// a trailing space.
func Format(w io.Writer, g *grid.Grid) error {
	full := pset.Full(g.N)
	width := 1
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			cell := g.At(r, c)
			if cell.Equal(full) {
				continue
			}
			if card := cell.Cardinality(); card > width {
				width = card
			}
		}
	}

	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			cell := g.At(r, c)
			text := cell.ToString()
			if cell.Equal(full) {
				text = string(pset.Blank)
			}
			if _, err := fmt.Fprintf(w, "%-*s ", width, text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatSummary renders a human-readable count of candidates tried during a
// search, e.g. "tried 1,204 candidates".
func FormatSummary(tried int) string {
	return fmt.Sprintf("tried %s candidates", humanize.Comma(int64(tried)))
}
