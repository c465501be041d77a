// Package save provides SQLite-based persistence for miner progress:
// the single profile record (high score plus upgrade levels) and a
// history of finished runs. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package save

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is a single finished-run record.
type RunEntry struct {
	ID        int64
	Score     int
	Gold      int
	Depth     float64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("save: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("save: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("save: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			version TEXT NOT NULL,
			high_score INTEGER NOT NULL DEFAULT 0,
			fuel_eff INTEGER NOT NULL DEFAULT 0,
			hook_power INTEGER NOT NULL DEFAULT 0,
			dig_speed INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			gold INTEGER NOT NULL DEFAULT 0,
			depth REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// Load reads the profile record. A missing or unreadable profile yields
// the defaults, never an error the caller has to handle: stored data
// that cannot be parsed is treated as absent.
func (s *Store) Load() Data {
	var d Data
	err := s.db.QueryRow(
		`SELECT version, high_score, fuel_eff, hook_power, dig_speed
		 FROM profile WHERE id = 1`,
	).Scan(&d.Version, &d.HighScore, &d.Upgrades.FuelEff, &d.Upgrades.HookPower, &d.Upgrades.DigSpeed)
	if err != nil {
		return Defaults()
	}
	d.normalize()
	return d
}

// Save writes the profile record, replacing any previous one.
func (s *Store) Save(d Data) error {
	d.normalize()
	_, err := s.db.Exec(
		`INSERT INTO profile (id, version, high_score, fuel_eff, hook_power, dig_speed)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			version = excluded.version,
			high_score = excluded.high_score,
			fuel_eff = excluded.fuel_eff,
			hook_power = excluded.hook_power,
			dig_speed = excluded.dig_speed`,
		d.Version, d.HighScore, d.Upgrades.FuelEff, d.Upgrades.HookPower, d.Upgrades.DigSpeed,
	)
	if err != nil {
		return fmt.Errorf("save: cannot write profile: %w", err)
	}
	return nil
}

// RecordRun appends a finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(score, gold int, depth float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (score, gold, depth) VALUES (?, ?, ?)",
		score, gold, depth,
	)
	if err != nil {
		return 0, fmt.Errorf("save: cannot record run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs, ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, score, gold, depth, created_at
		 FROM runs ORDER BY score DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("save: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Gold, &e.Depth, &createdAt); err != nil {
			return nil, fmt.Errorf("save: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save: row iteration error: %w", err)
	}
	return entries, nil
}

// Reset deletes the profile and all run history.
func (s *Store) Reset() error {
	_, err := s.db.Exec("DELETE FROM profile; DELETE FROM runs;")
	if err != nil {
		return fmt.Errorf("save: cannot reset: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite textual datetime.
func parseTimestamp(v any) time.Time {
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
