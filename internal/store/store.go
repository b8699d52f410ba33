// Package store persists the extraction run history: one row per processed
// workbook with its outcome and counts.
package store

import (
	"context"
	"time"
)

// RunStatus is the lifecycle state of an extraction run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one extraction run over a single workbook.
type Run struct {
	ID         string    `json:"id"`
	SourceFile string    `json:"source_file"`
	Status     RunStatus `json:"status"`
	Forms      int       `json:"forms"`
	Lots       int       `json:"lots"`
	Rows       int       `json:"rows"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store defines the run-history persistence interface.
type Store interface {
	CreateRun(ctx context.Context, sourceFile string) (*Run, error)
	CompleteRun(ctx context.Context, runID string, forms, lots, rows int) error
	FailRun(ctx context.Context, runID string, message string) error
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
