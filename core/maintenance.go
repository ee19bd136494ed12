// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"fmt"
	"time"
)

// DBMaintenanceOptions configures database maintenance operations.
type DBMaintenanceOptions struct {
	// Timeout bounds the maintenance operation. Zero means no limit.
	Timeout time.Duration
}

// RunDBMaintenance delegates to maint, bounded by opts.Timeout.
func RunDBMaintenance(ctx context.Context, maint DBMaintainer, dbType, dsn string, opts DBMaintenanceOptions) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	if err := maint.RunDBMaintenance(ctx, dbType, dsn); err != nil {
		return fmt.Errorf("maintenance of %s database: %w", dbType, err)
	}
	return nil
}
