// Package history persists run results in a local SQLite database so
// pass/fail trends and interaction timings can be inspected across runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	environment TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	passed      INTEGER NOT NULL,
	failed      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	name        TEXT NOT NULL,
	status      TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	error       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// Result statuses.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Run summarizes one suite execution.
type Run struct {
	ID          string
	Environment string
	StartedAt   time.Time
	Duration    time.Duration
	Passed      int
	Failed      int
}

// Result is the outcome of a single check within a run.
type Result struct {
	Name     string
	Status   string
	Duration time.Duration
	Error    string
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open creates the database (and its parent directory) if needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores a run and its results atomically and returns the run ID.
func (s *Store) RecordRun(environment string, startedAt time.Time, duration time.Duration, results []Result) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	passed, failed := 0, 0
	for _, r := range results {
		if r.Status == StatusPassed {
			passed++
		} else {
			failed++
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO runs (id, environment, started_at, duration_ms, passed, failed) VALUES (?, ?, ?, ?, ?, ?)`,
		id, environment, startedAt.UnixMilli(), duration.Milliseconds(), passed, failed,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range results {
		if _, err := tx.Exec(
			`INSERT INTO results (run_id, name, status, duration_ms, error) VALUES (?, ?, ?, ?, ?)`,
			id, r.Name, r.Status, r.Duration.Milliseconds(), r.Error,
		); err != nil {
			return "", fmt.Errorf("insert result %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit history transaction: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, environment, started_at, duration_ms, passed, failed
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedMs  int64
			durationMs int64
		)
		if err := rows.Scan(&run.ID, &run.Environment, &startedMs, &durationMs, &run.Passed, &run.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = time.UnixMilli(startedMs)
		run.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunResults returns the per-check results for a run.
func (s *Store) RunResults(runID string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT name, status, duration_ms, error FROM results WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r          Result
			durationMs int64
		)
		if err := rows.Scan(&r.Name, &r.Status, &durationMs, &r.Error); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		results = append(results, r)
	}
	return results, rows.Err()
}
