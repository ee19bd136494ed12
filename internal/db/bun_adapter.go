// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"os/user"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toeirei/quadshift/internal/model"
	"github.com/uptrace/bun"
)

// RunModel maps the runs table.
type RunModel struct {
	bun.BaseModel `bun:"table:runs"`
	ID            int64     `bun:"id,pk,autoincrement"`
	RunID         string    `bun:"run_id"`
	CreatedAt     time.Time `bun:"created_at"`
	Username      string    `bun:"username"`
	Operation     string    `bun:"operation"`
	N             int64     `bun:"n"`
	M             int64     `bun:"m"`
	Input         string    `bun:"input"`
	Output        string    `bun:"output"`
	Bytes         int64     `bun:"bytes"`
	Verified      bool      `bun:"verified"`
}

func runModelToModel(rm RunModel) model.Run {
	return model.Run{
		ID:        rm.ID,
		RunID:     rm.RunID,
		Timestamp: rm.CreatedAt.UTC(),
		Username:  rm.Username,
		Operation: rm.Operation,
		N:         int(rm.N),
		M:         int(rm.M),
		Input:     rm.Input,
		Output:    rm.Output,
		Bytes:     rm.Bytes,
		Verified:  rm.Verified,
	}
}

func runToRunModel(r *model.Run) RunModel {
	return RunModel{
		ID:        r.ID,
		RunID:     r.RunID,
		CreatedAt: r.Timestamp.UTC(),
		Username:  r.Username,
		Operation: r.Operation,
		N:         int64(r.N),
		M:         int64(r.M),
		Input:     r.Input,
		Output:    r.Output,
		Bytes:     r.Bytes,
		Verified:  r.Verified,
	}
}

// currentUsername returns the OS user without a Windows domain prefix.
func currentUsername() string {
	curUser, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if parts := strings.Split(curUser.Username, `\`); len(parts) > 1 {
		return parts[1]
	}
	return curUser.Username
}

// fillRunDefaults sets RunID, Timestamp and Username when they are empty.
func fillRunDefaults(r *model.Run) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	if r.Username == "" {
		r.Username = currentUsername()
	}
}

// RecordRunBun inserts r. The run_id column is unique, so re-recording the
// same run yields ErrDuplicate.
func RecordRunBun(ctx context.Context, bdb *bun.DB, r *model.Run) error {
	fillRunDefaults(r)
	rm := runToRunModel(r)
	rm.ID = 0
	if _, err := bdb.NewInsert().Model(&rm).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	if rm.ID == 0 {
		// Drivers without RETURNING/LastInsertId support: read the id back.
		var id int64
		if err := QueryRawInto(ctx, bdb, &id, "SELECT id FROM runs WHERE run_id = ?", rm.RunID); err != nil {
			return MapDBError(err)
		}
		rm.ID = id
	}
	r.ID = rm.ID
	return nil
}

// ListRunsBun returns runs ordered newest first.
func ListRunsBun(ctx context.Context, bdb *bun.DB, limit int) ([]model.Run, error) {
	var rms []RunModel
	q := bdb.NewSelect().Model(&rms).OrderExpr("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	out := make([]model.Run, 0, len(rms))
	for _, rm := range rms {
		out = append(out, runModelToModel(rm))
	}
	return out, nil
}

// GetRunBun loads a single run by its RunID.
func GetRunBun(ctx context.Context, bdb *bun.DB, runID string) (*model.Run, error) {
	var rm RunModel
	if err := bdb.NewSelect().Model(&rm).Where("run_id = ?", runID).Limit(1).Scan(ctx); err != nil {
		return nil, MapDBError(err)
	}
	r := runModelToModel(rm)
	return &r, nil
}

// DeleteRunsBeforeBun removes runs created before t.
func DeleteRunsBeforeBun(ctx context.Context, bdb *bun.DB, t time.Time) (int64, error) {
	res, err := bdb.NewDelete().Model((*RunModel)(nil)).Where("created_at < ?", t.UTC()).Exec(ctx)
	if err != nil {
		return 0, MapDBError(err)
	}
	return res.RowsAffected()
}
