// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/quadshift/internal/cipher"
	"github.com/toeirei/quadshift/internal/logging"
	"github.com/toeirei/quadshift/internal/model"
	"github.com/toeirei/quadshift/internal/textio"
)

// ErrNoInput is returned when a Source names neither text nor a path.
var ErrNoInput = errors.New("no input given")

// TextLabel is recorded as the input of runs fed from inline text.
const TextLabel = "<text>"

// Source is the text an operation reads: inline Text when set, else Path.
type Source struct {
	Text *string
	Path string
}

// Label names the source in history and messages.
func (s Source) Label() string {
	if s.Text != nil {
		return TextLabel
	}
	return s.Path
}

// Read returns the source bytes. Files go through textio, so errors wrap its
// sentinels.
func (s Source) Read() ([]byte, error) {
	if s.Text != nil {
		return []byte(*s.Text), nil
	}
	if s.Path == "" {
		return nil, ErrNoInput
	}
	return textio.ReadFile(s.Path)
}

// PipelineRequest describes the end-to-end encrypt, write, decrypt and
// compare flow.
type PipelineRequest struct {
	Params   cipher.Params
	Input    string
	Output   string
	Parallel cipher.ParallelOptions
}

// PipelineResult reports the outcome of RunPipeline.
type PipelineResult struct {
	Input    string
	Output   string
	Bytes    int64
	Match    bool
	Mismatch int // first differing byte, -1 on match
	RunID    string
}

// RunPipeline reads req.Input, writes its encryption to req.Output, decrypts
// that ciphertext again and compares it with the input. A mismatch is
// reported in the result, not as an error.
func RunPipeline(ctx context.Context, req PipelineRequest, rec RunRecorder) (PipelineResult, error) {
	res := PipelineResult{Input: req.Input, Output: req.Output, Mismatch: -1}

	src, err := textio.ReadFile(req.Input)
	if err != nil {
		return res, err
	}
	res.Bytes = int64(len(src))

	vr, err := cipher.VerifyParallel(ctx, src, req.Params, req.Parallel)
	if err != nil {
		return res, fmt.Errorf("transform: %w", err)
	}
	if err := textio.WriteFile(req.Output, vr.Ciphertext); err != nil {
		return res, err
	}
	res.Match = vr.Match
	res.Mismatch = vr.Mismatch

	run := model.Run{
		Operation: model.OpRun,
		N:         req.Params.N,
		M:         req.Params.M,
		Input:     req.Input,
		Output:    req.Output,
		Bytes:     res.Bytes,
		Verified:  vr.Match,
	}
	res.RunID = record(ctx, rec, &run)
	return res, nil
}

// TransformRequest describes a one-direction transform. An empty Output
// leaves writing to the caller.
type TransformRequest struct {
	Source    Source
	Output    string
	Params    cipher.Params
	Direction cipher.Direction
	Parallel  cipher.ParallelOptions
}

// Transform applies req.Direction to the source and writes the result to
// req.Output when one is given. The transformed bytes are always returned.
func Transform(ctx context.Context, req TransformRequest, rec RunRecorder) ([]byte, error) {
	src, err := req.Source.Read()
	if err != nil {
		return nil, err
	}
	out, err := cipher.TransformParallel(ctx, src, req.Params, req.Direction, req.Parallel)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	dest := textio.Stdio
	if req.Output != "" {
		if err := textio.WriteFile(req.Output, out); err != nil {
			return nil, err
		}
		dest = req.Output
	}

	op := model.OpEncrypt
	if req.Direction == cipher.Decrypt {
		op = model.OpDecrypt
	}
	record(ctx, rec, &model.Run{
		Operation: op,
		N:         req.Params.N,
		M:         req.Params.M,
		Input:     req.Source.Label(),
		Output:    dest,
		Bytes:     int64(len(src)),
	})
	return out, nil
}

// Verify round-trips the source through the cipher without writing anything.
func Verify(ctx context.Context, src Source, p cipher.Params, opts cipher.ParallelOptions, rec RunRecorder) (cipher.Result, error) {
	data, err := src.Read()
	if err != nil {
		return cipher.Result{}, err
	}
	res, err := cipher.VerifyParallel(ctx, data, p, opts)
	if err != nil {
		return cipher.Result{}, fmt.Errorf("verify: %w", err)
	}
	record(ctx, rec, &model.Run{
		Operation: model.OpVerify,
		N:         p.N,
		M:         p.M,
		Input:     src.Label(),
		Bytes:     int64(len(data)),
		Verified:  res.Match,
	})
	return res, nil
}

// record stores r when history is enabled. A failing store never fails the
// cipher operation; it is logged instead.
func record(ctx context.Context, rec RunRecorder, r *model.Run) string {
	if rec == nil {
		return ""
	}
	if err := rec.RecordRun(ctx, r); err != nil {
		logging.Warnf("could not record %s run: %v", r.Operation, err)
		return ""
	}
	return r.RunID
}
