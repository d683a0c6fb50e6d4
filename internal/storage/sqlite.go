// Package storage keeps the run history of a survival session in an
// in-memory SQLite database. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk: the history lives as
// long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory SQLite database holding finished runs.
type Store struct {
	db *sql.DB
}

// Run is one finished survival run.
type Run struct {
	ID          int64
	Seed        int64
	Layout      string
	Difficulty  string
	Level       int
	Seconds     int // survival time in whole seconds
	BossBattles int
	CreatedAt   time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs         int
	Longest      int
	AvgSeconds   float64
	HighestLevel int
	TotalSeconds int64
	LastPlayed   time.Time
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			layout TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			level INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			boss_battles INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(seconds DESC, level DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Seconds < 0 {
		return 0, fmt.Errorf("storage: cannot save run: negative survival time %d", r.Seconds)
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (seed, layout, difficulty, level, seconds, boss_battles)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Layout, r.Difficulty, r.Level, r.Seconds, r.BossBattles,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the N longest runs. Ties are broken by level, then by
// insertion order.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, layout, difficulty, level, seconds, boss_battles, created_at
		 FROM runs
		 ORDER BY seconds DESC, level DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Layout, &r.Difficulty, &r.Level, &r.Seconds, &r.BossBattles, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LongestSurvival returns the longest recorded survival time in seconds.
// Returns 0 if no runs exist.
func (s *Store) LongestSurvival() (int, error) {
	var seconds sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(seconds) FROM runs").Scan(&seconds)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest survival: %w", err)
	}

	if !seconds.Valid {
		return 0, nil
	}

	return int(seconds.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(seconds), 0), COALESCE(AVG(seconds), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(seconds), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Longest, &stats.AvgSeconds, &stats.HighestLevel, &stats.TotalSeconds, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
