// Package store persists classified observations to a local sqlite
// database. It is CLI-side plumbing only: the engine itself holds no
// persistent state.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go sqlite driver

	"github.com/jmylchreest/huesight/internal/colour"
)

// DB wraps the observation database.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema
// exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			session_id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS observations (
			observation_id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL,
			ts TEXT NOT NULL,
			r DOUBLE NOT NULL,
			g DOUBLE NOT NULL,
			b DOUBLE NOT NULL,
			name TEXT NOT NULL,
			FOREIGN KEY(session_id) REFERENCES sessions(session_id)
		);
		CREATE INDEX IF NOT EXISTS idx_observations_session
			ON observations(session_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db: db}, nil
}

// BeginSession inserts a new session row and returns its id.
func (d *DB) BeginSession(label string) (int64, error) {
	res, err := d.db.Exec("INSERT INTO sessions (label) VALUES (?)", label)
	if err != nil {
		return 0, fmt.Errorf("failed to begin session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read session id: %w", err)
	}
	return id, nil
}

// RecordObservation appends one classified sample to a session.
func (d *DB) RecordObservation(sessionID int64, ts time.Time, raw colour.RGB, name string) error {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	// Timestamps are stored as RFC 3339 text so they round-trip
	// through the driver without a time-format DSN option.
	_, err := d.db.Exec(
		"INSERT INTO observations (session_id, ts, r, g, b, name) VALUES (?, ?, ?, ?, ?, ?)",
		sessionID, ts.Format(time.RFC3339Nano), raw.R, raw.G, raw.B, name)
	if err != nil {
		return fmt.Errorf("failed to record observation: %w", err)
	}
	return nil
}

// Observation is one persisted classified sample.
type Observation struct {
	Timestamp time.Time
	Raw       colour.RGB
	Name      string
}

// SessionObservations returns a session's observations in insertion
// order.
func (d *DB) SessionObservations(sessionID int64) ([]Observation, error) {
	rows, err := d.db.Query(
		"SELECT ts, r, g, b, name FROM observations WHERE session_id = ? ORDER BY observation_id",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	var out []Observation
	for rows.Next() {
		var obs Observation
		var ts string
		if err := rows.Scan(&ts, &obs.Raw.R, &obs.Raw.G, &obs.Raw.B, &obs.Name); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation timestamp: %w", err)
		}
		out = append(out, obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate observations: %w", err)
	}
	return out, nil
}

// NameCounts returns how often each name occurred in a session,
// most frequent first. Useful for a quick session summary.
func (d *DB) NameCounts(sessionID int64) (map[string]int, error) {
	rows, err := d.db.Query(
		"SELECT name, COUNT(*) FROM observations WHERE session_id = ? GROUP BY name",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query name counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("failed to scan name count: %w", err)
		}
		counts[name] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate name counts: %w", err)
	}
	return counts, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.db.Close()
}
