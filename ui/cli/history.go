// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/toeirei/quadshift/internal/db"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/model"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List, export, import or prune recorded runs",
		Long: `Without flags, lists the most recent runs.

  --export FILE        write all runs as zstd-compressed JSON ('.zst' is appended)
  --import FILE        read runs from such a file; runs already present are skipped
  --prune-before AGE   delete runs older than AGE (Go duration or days, e.g. 720h, 30d)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, ok := historyStore(cmd)
			if !ok {
				return nil
			}
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if age, _ := cmd.Flags().GetString("prune-before"); age != "" {
				d, err := parseAge(age)
				if err != nil {
					return err
				}
				cutoff := time.Now().UTC().Add(-d)
				n, err := st.DeleteRunsBefore(ctx, cutoff)
				if err != nil {
					return fmt.Errorf("prune history: %w", err)
				}
				fmt.Fprintln(out, i18n.T("history.pruned", n, cutoff.Format("2006-01-02 15:04")))
				return nil
			}

			if path, _ := cmd.Flags().GetString("export"); path != "" {
				if !strings.HasSuffix(path, ".zst") {
					path += ".zst"
				}
				runs, err := st.ListRuns(ctx, 0)
				if err != nil {
					return fmt.Errorf("list runs: %w", err)
				}
				if err := writeExport(path, runs); err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("history.exported", len(runs), path))
				return nil
			}

			if path, _ := cmd.Flags().GetString("import"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("could not open file: %w", err)
				}
				defer func() { _ = f.Close() }()
				doc, err := db.ImportRuns(f)
				if err != nil {
					return err
				}
				imported, skipped, err := db.RestoreRuns(ctx, st, doc.Runs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, i18n.T("history.imported", imported, skipped, path))
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			runs, err := st.ListRuns(ctx, limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			printRuns(out, runs, time.Now())
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().String("export", "", "Export all runs to a zstd-compressed JSON file")
	cmd.Flags().String("import", "", "Import runs from a file written by --export")
	cmd.Flags().String("prune-before", "", "Delete runs older than this age (e.g. 720h, 30d)")
	cmd.MarkFlagsMutuallyExclusive("export", "import", "prune-before")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a single recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, ok := historyStore(cmd)
			if !ok {
				return nil
			}
			r, err := st.GetRun(cmd.Context(), args[0])
			if errors.Is(err, db.ErrNotFound) {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("history.not_found", args[0]))
				return reportedError{err: err}
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("history.detail",
				r.RunID, r.Operation,
				r.Timestamp.Local().Format(time.RFC3339), humanize.Time(r.Timestamp),
				r.Username, paramsLabel(*r), r.Input, r.Output,
				humanize.Bytes(uint64(r.Bytes)), r.Verified))
			return nil
		},
	})
	return cmd
}

// historyStore returns the open store, printing a notice when history is off.
func historyStore(cmd *cobra.Command) (db.Store, bool) {
	st := db.DefaultStore()
	if !historyWanted() || st == nil {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("history.disabled"))
		return nil, false
	}
	return st, true
}

func writeExport(path string, runs []model.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := db.ExportRuns(f, runs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printRuns(w io.Writer, runs []model.Run, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, i18n.T("history.empty"))
		return
	}
	cols := strings.Split(i18n.T("history.columns"), "|")
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	fmt.Fprintln(w, i18n.T("history.header", header...))
	for _, r := range runs {
		status := i18n.T("history.unverified")
		if r.Verified {
			status = i18n.T("history.verified")
		}
		files := r.Input
		if r.Output != "" {
			files += " -> " + r.Output
		}
		fmt.Fprintln(w, i18n.T("history.row",
			r.ShortID(), r.Operation, humanize.RelTime(r.Timestamp, now, "ago", "from now"),
			paramsLabel(r), humanize.Bytes(uint64(r.Bytes)), status, files))
	}
}

func paramsLabel(r model.Run) string {
	return fmt.Sprintf("n=%d m=%d", r.N, r.M)
}

// parseAge accepts Go durations and a plain day count such as "30d".
func parseAge(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid age %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid age %q", s)
	}
	return d, nil
}
