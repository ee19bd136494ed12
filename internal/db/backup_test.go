// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/toeirei/quadshift/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	runs := []model.Run{
		{ID: 1, RunID: "a", Timestamp: ts, Operation: model.OpEncrypt, N: 3, M: 2, Bytes: 12},
		{ID: 2, RunID: "b", Timestamp: ts.Add(time.Minute), Operation: model.OpVerify, Verified: true},
	}

	var buf bytes.Buffer
	if err := ExportRuns(&buf, runs); err != nil {
		t.Fatalf("ExportRuns failed: %v", err)
	}
	// zstd frame magic
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x28, 0xb5, 0x2f, 0xfd}) {
		t.Fatalf("expected zstd frame header, got % x", buf.Bytes()[:4])
	}

	doc, err := ImportRuns(&buf)
	if err != nil {
		t.Fatalf("ImportRuns failed: %v", err)
	}
	if doc.SchemaVersion != ExportSchemaVersion {
		t.Fatalf("unexpected schema version %d", doc.SchemaVersion)
	}
	if len(doc.Runs) != 2 || doc.Runs[1].RunID != "b" || !doc.Runs[1].Verified || !doc.Runs[0].Timestamp.Equal(ts) {
		t.Fatalf("unexpected runs after import: %+v", doc.Runs)
	}
}

func TestImportRuns_Garbage(t *testing.T) {
	if _, err := ImportRuns(bytes.NewReader([]byte("not zstd at all"))); err == nil {
		t.Fatalf("expected error decoding garbage")
	}
}

func TestRestoreRuns_SkipsDuplicates(t *testing.T) {
	WithTestStore(t, func(s *SqliteStore) {
		ctx := context.Background()
		existing := &model.Run{RunID: "keep-me", Operation: model.OpRun}
		if err := s.RecordRun(ctx, existing); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
		incoming := []model.Run{
			{RunID: "keep-me", Operation: model.OpRun},
			{RunID: "new-one", Operation: model.OpDecrypt},
		}
		imported, skipped, err := RestoreRuns(ctx, s, incoming)
		if err != nil {
			t.Fatalf("RestoreRuns failed: %v", err)
		}
		if imported != 1 || skipped != 1 {
			t.Fatalf("expected 1 imported and 1 skipped, got %d/%d", imported, skipped)
		}
	})
}
