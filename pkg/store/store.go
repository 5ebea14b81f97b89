// Package store persists install-prompt bookkeeping: how often the app was
// opened and when the user dismissed the prompt. The breakpoint engine
// itself keeps no state; this is a side service consumed by the demo shell.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store handles prompt bookkeeping persistence
type Store struct {
	db *sql.DB
}

// Counts is a snapshot of the recorded bookkeeping.
type Counts struct {
	Visits        int
	Dismissals    int
	LastDismissed *time.Time
}

// Open opens or creates the bookkeeping database at the given path
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		visited_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS dismissals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reason TEXT NOT NULL DEFAULT '',
		dismissed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordVisit increments the visit counter and returns the new total.
func (s *Store) RecordVisit() (int, error) {
	if _, err := s.db.Exec(`INSERT INTO visits DEFAULT VALUES`); err != nil {
		return 0, fmt.Errorf("record visit: %w", err)
	}
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count visits: %w", err)
	}
	return total, nil
}

// RecordDismissal records that the user dismissed the install prompt.
func (s *Store) RecordDismissal(reason string) error {
	if _, err := s.db.Exec(`INSERT INTO dismissals (reason) VALUES (?)`, reason); err != nil {
		return fmt.Errorf("record dismissal: %w", err)
	}
	return nil
}

// Snapshot returns the current counters.
func (s *Store) Snapshot() (Counts, error) {
	var c Counts
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&c.Visits); err != nil {
		return Counts{}, fmt.Errorf("count visits: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM dismissals`).Scan(&c.Dismissals); err != nil {
		return Counts{}, fmt.Errorf("count dismissals: %w", err)
	}

	var last sql.NullTime
	err := s.db.QueryRow(`SELECT MAX(dismissed_at) FROM dismissals`).Scan(&last)
	if err != nil && err != sql.ErrNoRows {
		return Counts{}, fmt.Errorf("last dismissal: %w", err)
	}
	if last.Valid {
		c.LastDismissed = &last.Time
	}
	return c, nil
}

// Reset clears all recorded bookkeeping.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM visits; DELETE FROM dismissals;`); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}
