// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/quadshift/internal/model"
)

// ExportSchemaVersion is written into every history export.
const ExportSchemaVersion = 1

// ExportRuns writes runs to w as zstd-compressed, indented JSON.
func ExportRuns(w io.Writer, runs []model.Run) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if runs == nil {
		runs = []model.Run{}
	}
	doc := model.HistoryExport{
		SchemaVersion: ExportSchemaVersion,
		ExportedAt:    time.Now().UTC(),
		Runs:          runs,
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return zw.Close()
}

// ImportRuns decodes an export produced by ExportRuns.
func ImportRuns(r io.Reader) (*model.HistoryExport, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	var doc model.HistoryExport
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if doc.SchemaVersion > ExportSchemaVersion {
		return nil, fmt.Errorf("unsupported history export version %d", doc.SchemaVersion)
	}
	return &doc, nil
}

// RunRecorder is the write side of Store.
type RunRecorder interface {
	RecordRun(ctx context.Context, r *model.Run) error
}

// RestoreRuns records runs into s. Runs whose RunID already exists are
// skipped and counted separately.
func RestoreRuns(ctx context.Context, s RunRecorder, runs []model.Run) (imported, skipped int, err error) {
	for i := range runs {
		r := runs[i]
		r.ID = 0
		if err := s.RecordRun(ctx, &r); err != nil {
			if errors.Is(err, ErrDuplicate) {
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("restore run %s: %w", r.RunID, err)
		}
		imported++
	}
	return imported, skipped, nil
}
