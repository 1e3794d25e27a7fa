// Package archive persists generated puzzles to a small sqlite-backed
// store, purely as a convenience for replaying or listing prior runs. It
// has no bearing on the solver or generator's correctness: generation
// succeeds identically whether or not an archive is configured.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS puzzles (
	id            TEXT PRIMARY KEY,
	size          INTEGER NOT NULL,
	mode          TEXT NOT NULL,
	puzzle_text   TEXT NOT NULL,
	solution_text TEXT NOT NULL,
	created_at    TEXT NOT NULL
)`

// Record is one archived puzzle.
type Record struct {
	ID           string
	Size         int
	Mode         string
	PuzzleText   string
	SolutionText string
	CreatedAt    string
}

// Store wraps a sqlite database holding archived puzzles.
type Store struct {
	db *sql.DB
}

// Open creates or opens the sqlite database at path (or ":memory:" for a
// throwaway store) and ensures its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec, stamping CreatedAt with the current time if unset.
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.CreatedAt == "" {
		rec.CreatedAt = strftime.Format("%Y-%m-%dT%H:%M:%SZ", time.Now().UTC())
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO puzzles (id, size, mode, puzzle_text, solution_text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Size, rec.Mode, rec.PuzzleText, rec.SolutionText, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("archive: save %s: %w", rec.ID, err)
	}
	return nil
}

// List returns every archived puzzle, oldest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, size, mode, puzzle_text, solution_text, created_at FROM puzzles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Size, &rec.Mode, &rec.PuzzleText, &rec.SolutionText, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("archive: scan: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	return out, nil
}
