// Package applog is the repository's one seam onto github.com/rs/zerolog.
// The CLI depends on the Logger interface, never on zerolog directly, so
// the structured-logging library stays swappable; the search/heuristics
// packages import neither and stay free of an output-format dependency.
package applog

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the structured-logging surface the CLI depends on. The solver
// and generator take plain callbacks, which the CLI wires to a Logger.
type Logger interface {
	Info(msg string)
	Round(round int, result string)
	Branch(depth, row, col int)
	Backtrack(depth int)
	Error(msg string, err error)
	// Fatal logs msg at fatal level and terminates the process with a
	// non-zero exit code, matching the specification's allocation-failure
	// handling: fatal, diagnostic to the error stream, process abort.
	Fatal(msg string, err error)
}

type zlogger struct {
	zl zerolog.Logger
}

// Format selects how log output is rendered.
type Format string

const (
	// Auto picks Console when stream is a terminal, JSON otherwise.
	Auto Format = ""
	Text Format = "text"
	JSON Format = "json"
)

// New builds a Logger writing to stream. format overrides the automatic
// terminal detection; pass Auto to let isatty decide.
func New(stream *os.File, format Format) Logger {
	useConsole := format == Text || (format == Auto && isatty.IsTerminal(stream.Fd()))

	var zl zerolog.Logger
	if useConsole {
		cw := zerolog.ConsoleWriter{Out: colorable.NewColorable(stream), TimeFormat: time.RFC3339}
		zl = zerolog.New(cw).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(stream).With().Timestamp().Logger()
	}
	return &zlogger{zl: zl}
}

func (l *zlogger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

func (l *zlogger) Round(round int, result string) {
	l.zl.Debug().Int("round", round).Str("result", result).Msg("propagation round")
}

func (l *zlogger) Branch(depth, row, col int) {
	l.zl.Debug().Int("depth", depth).Int("row", row).Int("col", col).Msg("branch")
}

func (l *zlogger) Backtrack(depth int) {
	l.zl.Debug().Int("depth", depth).Msg("backtrack")
}

func (l *zlogger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *zlogger) Fatal(msg string, err error) {
	l.zl.Fatal().Err(err).Msg(msg)
}
