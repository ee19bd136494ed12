// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"time"

	"github.com/toeirei/quadshift/internal/model"
	"github.com/uptrace/bun"
)

// bunStore implements Store on top of a long-lived *bun.DB. The per-engine
// store types embed it.
type bunStore struct {
	bun *bun.DB
}

// BunDB exposes the underlying Bun handle for maintenance and tests.
func (s *bunStore) BunDB() *bun.DB { return s.bun }

func (s *bunStore) RecordRun(ctx context.Context, r *model.Run) error {
	if err := RecordRunBun(ctx, s.bun, r); err != nil {
		return err
	}
	dbLogf("recorded run %s", r)
	return nil
}

func (s *bunStore) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	return ListRunsBun(ctx, s.bun, limit)
}

func (s *bunStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	return GetRunBun(ctx, s.bun, runID)
}

func (s *bunStore) DeleteRunsBefore(ctx context.Context, t time.Time) (int64, error) {
	n, err := DeleteRunsBeforeBun(ctx, s.bun, t)
	if err == nil {
		dbLogf("pruned %d runs before %s", n, t.Format(time.RFC3339))
	}
	return n, err
}

func (s *bunStore) Close() error {
	return s.bun.Close()
}
