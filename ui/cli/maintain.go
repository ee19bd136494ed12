// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadshift/core"
	"github.com/toeirei/quadshift/internal/db"
	"github.com/toeirei/quadshift/internal/i18n"
)

// cliDBMaintainer adapts the db package to core.DBMaintainer.
type cliDBMaintainer struct{}

func (cliDBMaintainer) RunDBMaintenance(ctx context.Context, dbType, dsn string) error {
	return db.RunDBMaintenance(ctx, dbType, dsn)
}

// dbMaintainer is a package-level variable so tests can inject a fake.
var dbMaintainer core.DBMaintainer = cliDBMaintainer{}

func newMaintainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintain",
		Short: "Run database maintenance (VACUUM/OPTIMIZE) for the history database",
		Long:  `Runs engine-specific maintenance tasks (VACUUM, OPTIMIZE TABLE, PRAGMA optimize).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := historyStore(cmd); !ok {
				return nil
			}
			timeoutSec, _ := cmd.Flags().GetInt("timeout")
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, i18n.T("maintain.start", appConfig.Database.Type))
			opts := core.DBMaintenanceOptions{Timeout: time.Duration(timeoutSec) * time.Second}
			if err := core.RunDBMaintenance(cmd.Context(), dbMaintainer, appConfig.Database.Type, appConfig.Database.Dsn, opts); err != nil {
				return err
			}
			fmt.Fprintln(out, i18n.T("maintain.done"))
			return nil
		},
	}
	cmd.Flags().Int("timeout", 0, "Timeout in seconds for maintenance (0 means no timeout)")
	return cmd
}
