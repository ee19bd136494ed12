// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model holds the plain data types shared by the store and the CLI.
package model

import (
	"fmt"
	"time"
)

// Operation names recorded in the run history.
const (
	OpRun     = "run"
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
	OpVerify  = "verify"
)

// Run is one recorded cipher invocation.
type Run struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Operation string    `json:"operation"`
	N         int       `json:"n"`
	M         int       `json:"m"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Bytes     int64     `json:"bytes"`
	Verified  bool      `json:"verified"`
}

// String returns a short human readable description.
func (r Run) String() string {
	return fmt.Sprintf("%s %s n=%d m=%d", r.RunID, r.Operation, r.N, r.M)
}

// ShortID returns the first eight characters of RunID.
func (r Run) ShortID() string {
	if len(r.RunID) > 8 {
		return r.RunID[:8]
	}
	return r.RunID
}

// HistoryExport is the document written by `quadshift history --export`.
type HistoryExport struct {
	SchemaVersion int       `json:"schema_version"`
	ExportedAt    time.Time `json:"exported_at"`
	Runs          []Run     `json:"runs"`
}
