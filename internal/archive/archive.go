// Package archive keeps a durable, append-only record of pipeline runs
// in SQLite. Runs are only ever inserted; the history doubles as an
// audit trail for the back office.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed run archive.
type Store struct {
	db *sql.DB
}

// RunRecord is one recorded stage execution.
type RunRecord struct {
	ID         int64     `json:"id"`
	Stage      string    `json:"stage"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Error      string    `json:"error,omitempty"`
	Artifacts  []string  `json:"artifacts,omitempty"`
}

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// New opens (and if needed migrates) the archive at dbPath.
// Use ":memory:" for tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// SQLite handles one writer at a time; a second pooled connection
	// would also see a fresh database when dbPath is ":memory:".
	db.SetMaxOpenConns(1)
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stage TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		error TEXT,
		artifacts TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_stage ON runs(stage, started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one run to the archive.
func (s *Store) Record(ctx context.Context, run RunRecord) error {
	artifacts, err := json.Marshal(run.Artifacts)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (stage, status, started_at, finished_at, error, artifacts)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Stage,
		run.Status,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Error,
		string(artifacts),
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, stage, status, started_at, finished_at, COALESCE(error, ''), COALESCE(artifacts, '[]')
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var started, finished, artifacts string
		if err := rows.Scan(&r.ID, &r.Stage, &r.Status, &started, &finished, &r.Error, &artifacts); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("run %d started_at: %w", r.ID, err)
		}
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("run %d finished_at: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(artifacts), &r.Artifacts); err != nil {
			return nil, fmt.Errorf("run %d artifacts: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
