// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/quadshift/internal/model"
)

// RunRecorder persists a finished run. A nil RunRecorder disables history.
type RunRecorder interface {
	RecordRun(ctx context.Context, r *model.Run) error
}

// DBMaintainer runs engine-specific maintenance on a database.
type DBMaintainer interface {
	RunDBMaintenance(ctx context.Context, dbType, dsn string) error
}
