package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	source_file TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'running',
	forms       INTEGER NOT NULL DEFAULT 0,
	lots        INTEGER NOT NULL DEFAULT 0,
	rows        INTEGER NOT NULL DEFAULT 0,
	error       TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, sourceFile string) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source_file, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, sourceFile, string(RunStatusRunning), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &Run{
		ID:         id,
		SourceFile: sourceFile,
		Status:     RunStatusRunning,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (s *SQLiteStore) CompleteRun(ctx context.Context, runID string, forms, lots, rows int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, forms = ?, lots = ?, rows = ?, updated_at = ? WHERE id = ?`,
		string(RunStatusCompleted), forms, lots, rows, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete run %s", runID)
	}
	return checkRowsAffected(res, runID)
}

func (s *SQLiteStore) FailRun(ctx context.Context, runID string, message string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, error = ?, updated_at = ? WHERE id = ?`,
		string(RunStatusFailed), message, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: fail run %s", runID)
	}
	return checkRowsAffected(res, runID)
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_file, status, forms, lots, rows, error, created_at, updated_at
		 FROM runs WHERE id = ?`, runID,
	)
	run, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("sqlite: run %s not found", runID)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	return run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_file, status, forms, lots, rows, error, created_at, updated_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, *run)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: iterate runs")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var status string
	if err := s.Scan(
		&run.ID, &run.SourceFile, &status,
		&run.Forms, &run.Lots, &run.Rows, &run.Error,
		&run.CreatedAt, &run.UpdatedAt,
	); err != nil {
		return nil, err
	}
	run.Status = RunStatus(status)
	return &run, nil
}

func checkRowsAffected(res sql.Result, runID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: run %s not found", runID)
	}
	return nil
}
