// seehuhn.de/go/preflight - print-production checks for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store keeps the spot color vocabulary in an SQLite database.
//
// The database holds one row per spot ink name.  Names are unique up to
// case: the column name_key holds [spot.Key] of the name and carries the
// uniqueness constraint, while the column name keeps the spelling under
// which the entry was first added.  When a new database is created, it is
// filled with a default vocabulary of die-cut, finishing and Pantone names.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"seehuhn.de/go/preflight/spot"
)

// EnvPath is the environment variable which overrides [DefaultPath].
const EnvPath = "PREFLIGHT_DB"

const fileName = "spot_colors.db"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS spot_colors (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL UNIQUE,
		name_key       TEXT NOT NULL UNIQUE,
		category       TEXT NOT NULL,
		description    TEXT,
		pantone_number TEXT,
		created        DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_spot_colors_name ON spot_colors(name)`,
	`CREATE INDEX IF NOT EXISTS idx_spot_colors_category ON spot_colors(category)`,
}

const insertEntry = `INSERT OR IGNORE INTO spot_colors
	(name, name_key, category, description, pantone_number)
	VALUES (?, ?, ?, ?, ?)`

const selectEntry = `SELECT name, category,
	COALESCE(description, ''), COALESCE(pantone_number, '')
	FROM spot_colors`

// Store is a spot color vocabulary backed by an SQLite database.
// The methods of a Store can be called concurrently.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the location of the vocabulary database.
// If the environment variable PREFLIGHT_DB is set, its value is used.
// Otherwise the database is located next to the executable, falling back to
// the current directory if the executable cannot be found.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return fileName
	}
	return filepath.Join(filepath.Dir(exe), fileName)
}

// Open opens the vocabulary database at the given path.
// The database file is created if needed.  If the database contains no
// entries, the default vocabulary is added.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	// SQLite allows only one writer at a time.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	err = s.init(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spot_colors`).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.insertAll(ctx, defaultEntries)
}

func (s *Store) insertAll(ctx context.Context, entries []spot.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertEntry)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx, entryArgs(e)...)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func entryArgs(e spot.Entry) []any {
	var pantone any
	if e.PantoneNumber != "" {
		pantone = e.PantoneNumber
	}
	return []any{e.Name, spot.Key(e.Name), string(e.Category), e.Description, pantone}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add adds a new entry to the vocabulary.
// If an entry with the same name (ignoring case) exists already, the
// vocabulary is left unchanged and no error is returned.
func (s *Store) Add(ctx context.Context, e spot.Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("store: add: %w", errEmptyName)
	}
	if e.Category == "" {
		e.Category = spot.Unknown
	}
	_, err := s.db.ExecContext(ctx, insertEntry, entryArgs(e)...)
	if err != nil {
		return fmt.Errorf("store: add %q: %w", e.Name, err)
	}
	return nil
}

var errEmptyName = errors.New("empty spot color name")

// AddPantone adds the Pantone color with the given number.
// The entry is stored under the name "PANTONE <number>".
func (s *Store) AddPantone(ctx context.Context, number, description string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return fmt.Errorf("store: add pantone: %w", errEmptyName)
	}
	return s.Add(ctx, spot.Entry{
		Name:          "PANTONE " + number,
		Category:      spot.Pantone,
		Description:   description,
		PantoneNumber: number,
	})
}

// Lookup finds the entry for the given name, ignoring case.
func (s *Store) Lookup(ctx context.Context, name string) (spot.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx, selectEntry+` WHERE name_key = ?`, spot.Key(name))
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return spot.Entry{}, false, nil
	} else if err != nil {
		return spot.Entry{}, false, fmt.Errorf("store: lookup %q: %w", name, err)
	}
	return e, true, nil
}

// Contains reports whether the vocabulary contains the given name,
// ignoring case.
func (s *Store) Contains(ctx context.Context, name string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM spot_colors WHERE name_key = ?`, spot.Key(name)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("store: contains %q: %w", name, err)
	}
	return n > 0, nil
}

// Names returns all names in the vocabulary, in sorted order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	names, err := s.names(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: names: %w", err)
	}
	return names, nil
}

// NamesByCategory returns the names in the given category, in sorted order.
func (s *Store) NamesByCategory(ctx context.Context, cat spot.Category) ([]string, error) {
	names, err := s.names(ctx, []spot.Category{cat})
	if err != nil {
		return nil, fmt.Errorf("store: names in %s: %w", cat, err)
	}
	return names, nil
}

// names lists the names in the given categories.
// If cats is empty, all names are returned.
func (s *Store) names(ctx context.Context, cats []spot.Category) ([]string, error) {
	query := `SELECT name FROM spot_colors`
	var args []any
	if len(cats) > 0 {
		marks := make([]string, len(cats))
		for i, c := range cats {
			marks[i] = "?"
			args = append(args, string(c))
		}
		query += ` WHERE category IN (` + strings.Join(marks, ", ") + `)`
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	return res, rows.Err()
}

// Entries returns all entries of the vocabulary, sorted by category and
// then by name.
func (s *Store) Entries(ctx context.Context) ([]spot.Entry, error) {
	rows, err := s.db.QueryContext(ctx, selectEntry+` ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("store: entries: %w", err)
	}
	defer rows.Close()

	var res []spot.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("store: entries: %w", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: entries: %w", err)
	}
	return res, nil
}

// Vocabulary returns a snapshot of the names in the given categories
// as a case-insensitive set.  If no category is given, all names are
// included.
func (s *Store) Vocabulary(ctx context.Context, cats ...spot.Category) (*spot.Set, error) {
	names, err := s.names(ctx, cats)
	if err != nil {
		return nil, fmt.Errorf("store: vocabulary: %w", err)
	}
	return spot.NewSet(names...), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (spot.Entry, error) {
	var e spot.Entry
	var cat string
	err := row.Scan(&e.Name, &cat, &e.Description, &e.PantoneNumber)
	if err != nil {
		return spot.Entry{}, err
	}
	e.Category = spot.Category(cat)
	return e, nil
}
