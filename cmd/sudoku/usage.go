package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `sudoku - solve or generate N x N sudoku-style grids

Usage:
  sudoku [flags] [FILE]
  sudoku -g [flags] [N]

With no -g/--generate, sudoku reads a grid from FILE (or stdin if FILE is
omitted), solves it, and writes the result to stdout (or -o FILE). A grid
that has no solution is reported the same way and is not treated as an
error.

With -g/--generate, sudoku instead produces a new N x N puzzle (N defaults
to 9, and must be one of 1, 4, 9, 16, 25, 36, 49, 64) and writes it the
same way.

Flags:
  -o, --output=FILE      redirect result output to FILE instead of stdout
  -v, --verbose          dump the grid after every propagation round and
                          before every branch, via the error stream
  -g, --generate [N]     generate mode; N is an optional positional
                          argument, default 9
  -s, --strict           with -g, erase cells only while the puzzle keeps
                          exactly one completion (slower, fewer givens)
      --archive=FILE     persist generated or solved puzzles to a sqlite
                          database at FILE
      --log-format=FMT   text, json, or unset for automatic detection
  -V, --version          print the version and exit
  -h, --help             print this message and exit
`)
}
