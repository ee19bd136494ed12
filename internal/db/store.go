// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"

	"github.com/toeirei/quadshift/internal/model"
)

// Store defines the operations of the run-history store.
// This allows for multiple database backends to be implemented.
type Store interface {
	// RecordRun inserts r, filling ID, RunID, Timestamp and Username when empty.
	RecordRun(ctx context.Context, r *model.Run) error
	// ListRuns returns the newest runs first; limit <= 0 means all.
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)
	// GetRun looks a run up by its RunID; ErrNotFound when absent.
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	// DeleteRunsBefore removes runs older than t and returns how many were removed.
	DeleteRunsBefore(ctx context.Context, t time.Time) (int64, error)
	// Close releases the underlying connection pool.
	Close() error
}
