// Command sudoku is the CLI front end: it wires the textual parser, the
// solver, and the generator together. None of that wiring lives in the
// core packages (pset, grid, consistency, heuristics, choicestack, search,
// generate) — they depend on nothing in this file.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gridcolor/sudoku/generate"
	"github.com/gridcolor/sudoku/grid"
	"github.com/gridcolor/sudoku/gridio"
	"github.com/gridcolor/sudoku/internal/applog"
	"github.com/gridcolor/sudoku/internal/archive"
	"github.com/gridcolor/sudoku/search"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		outputPath   string
		verbose      bool
		generateMode bool
		strict       bool
		showVersion  bool
		archivePath  string
		logFormat    string
	)

	fs := flag.NewFlagSet("sudoku", flag.ContinueOnError)
	fs.StringVar(&outputPath, "o", "", "redirect result output to FILE")
	fs.StringVar(&outputPath, "output", "", "redirect result output to FILE")
	fs.BoolVar(&verbose, "v", false, "dump grid after every propagation round and before every branch")
	fs.BoolVar(&verbose, "verbose", false, "dump grid after every propagation round and before every branch")
	fs.BoolVar(&generateMode, "g", false, "generate mode; an optional size may follow as a positional argument (default 9)")
	fs.BoolVar(&generateMode, "generate", false, "generate mode; an optional size may follow as a positional argument (default 9)")
	fs.BoolVar(&strict, "s", false, "with -g, enforce unique-solution erasure")
	fs.BoolVar(&strict, "strict", false, "with -g, enforce unique-solution erasure")
	fs.BoolVar(&showVersion, "V", false, "print version and exit")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.StringVar(&archivePath, "archive", "", "persist generated/solved puzzles to a sqlite database at FILE")
	fs.StringVar(&logFormat, "log-format", "", "override automatic text/json log format selection (text|json)")
	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintf(os.Stdout, "sudoku version %s\n", version)
		return 0
	}

	logger := applog.New(os.Stderr, parseLogFormat(logFormat))

	var store *archive.Store
	if archivePath != "" {
		s, err := archive.Open(archivePath)
		if err != nil {
			logger.Fatal("could not open archive", err)
		}
		store = s
		defer store.Close()
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logger.Fatal("could not open output file", err)
		}
		defer f.Close()
		out = f
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if generateMode {
		return runGenerate(fs.Args(), out, strict, verbose, rng, logger, store)
	}
	return runSolve(fs.Args(), out, verbose, logger, store)
}

func parseLogFormat(s string) applog.Format {
	switch s {
	case "text":
		return applog.Text
	case "json":
		return applog.JSON
	default:
		return applog.Auto
	}
}

func runGenerate(positional []string, out io.Writer, strict, verbose bool, rng *rand.Rand, logger applog.Logger, store *archive.Store) int {
	n := 9
	if len(positional) > 0 {
		parsed, err := strconv.Atoi(positional[0])
		if err != nil {
			logger.Fatal("invalid size argument", err)
		}
		n = parsed
	}

	mode := generate.Default
	if strict {
		mode = generate.Strict
	}

	trace := generate.Trace{}
	if verbose {
		trace.OnRound = func(round int, g *grid.Grid) {
			logger.Round(round, "")
			dumpGrid(g)
		}
		trace.OnBranch = func(depth, row, col int) { logger.Branch(depth, row, col) }
		trace.OnBacktrack = func(depth int) { logger.Backtrack(depth) }
	}

	result, err := generate.Generate(n, mode, rng, trace)
	if err != nil {
		logger.Fatal("generation failed", err)
	}

	if err := gridio.Format(out, result.Puzzle); err != nil {
		logger.Fatal("failed to write puzzle", err)
	}

	if store != nil {
		archiveGenerated(store, logger, n, mode.String(), result)
	}
	return 0
}

func runSolve(positional []string, out io.Writer, verbose bool, logger applog.Logger, store *archive.Store) int {
	var in io.Reader = os.Stdin
	if len(positional) > 0 {
		f, err := os.Open(positional[0])
		if err != nil {
			logger.Fatal("could not open input file", err)
		}
		defer f.Close()
		in = f
	}

	g, err := gridio.Parse(in)
	if err != nil {
		logger.Fatal("could not parse input grid", err)
	}

	initial := g.Copy()

	opts := search.Options{}
	if verbose {
		opts.OnRound = func(round int, g *grid.Grid) {
			logger.Round(round, "")
			dumpGrid(g)
		}
		opts.OnBranch = func(depth, row, col int) { logger.Branch(depth, row, col) }
		opts.OnBacktrack = func(depth int) { logger.Backtrack(depth) }
	}

	if !search.Solve(g, opts) {
		fmt.Fprintln(out, "Grid could not be solved")
		return 0
	}

	if err := gridio.Format(out, g); err != nil {
		logger.Fatal("failed to write solved grid", err)
	}

	if store != nil {
		var puzBuf, buf bytes.Buffer
		if err := gridio.Format(&buf, g); err == nil && gridio.Format(&puzBuf, initial) == nil {
			rec := archive.Record{
				ID:           uuid.NewString(),
				Size:         g.N,
				Mode:         "solved",
				PuzzleText:   puzBuf.String(),
				SolutionText: buf.String(),
			}
			if err := store.Save(context.Background(), rec); err != nil {
				logger.Error("failed to archive solved grid", err)
			}
		}
	}
	return 0
}

func archiveGenerated(store *archive.Store, logger applog.Logger, n int, modeName string, result *generate.Result) {
	var puzBuf, solBuf bytes.Buffer
	if err := gridio.Format(&puzBuf, result.Puzzle); err != nil {
		logger.Error("failed to render puzzle for archive", err)
		return
	}
	if err := gridio.Format(&solBuf, result.Solution); err != nil {
		logger.Error("failed to render solution for archive", err)
		return
	}
	rec := archive.Record{
		ID:           result.ID,
		Size:         n,
		Mode:         "generated-" + modeName,
		PuzzleText:   puzBuf.String(),
		SolutionText: solBuf.String(),
	}
	if err := store.Save(context.Background(), rec); err != nil {
		logger.Error("failed to archive generated puzzle", err)
	}
}

func dumpGrid(g *grid.Grid) {
	_ = gridio.Format(os.Stderr, g)
}
