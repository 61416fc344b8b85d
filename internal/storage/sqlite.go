// Package storage persists the snake high score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the database lives unless --db says otherwise.
const DefaultPath = "~/.snake/snake.db"

// Store manages the SQLite database connection for the high score.
type Store struct {
	db *sql.DB
}

// HighScoreEntry is the stored high score record.
type HighScoreEntry struct {
	Score     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The table holds at most one row.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL CHECK (score >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the stored high score. The boolean is false when no
// game has been recorded yet.
func (s *Store) HighScore() (int, bool, error) {
	entry, err := s.HighScoreEntry()
	if err != nil {
		return 0, false, err
	}
	if entry == nil {
		return 0, false, nil
	}
	return entry.Score, true, nil
}

// HighScoreEntry returns the stored record, or nil if there is none.
func (s *Store) HighScoreEntry() (*HighScoreEntry, error) {
	var entry HighScoreEntry
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT score, updated_at FROM high_score WHERE id = 1",
	).Scan(&entry.Score, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	entry.UpdatedAt = parseTime(updatedAt)
	return &entry, nil
}

// SaveHighScore stores score unless the stored value is already at least
// as high.
func (s *Store) SaveHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative score %d", score)
	}

	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at)
		 VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE
		 SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Reset deletes the stored high score.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM high_score"); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
