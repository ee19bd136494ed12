// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package textio reads and writes the plaintext and ciphertext files.
//
// Every error returned by this package wraps exactly one of the sentinel
// errors below, so callers can pick a user-facing message with errors.Is.
// Paths ending in ".zst" are transparently zstd (de)compressed and "-"
// stands for stdin or stdout.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrPermission  = errors.New("permission denied")
	ErrUndecodable = errors.New("input is not valid UTF-8")
	ErrIO          = errors.New("read/write error")
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

// Overridable in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// IsCompressed reports whether path selects zstd compression.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}

// ReadFile returns the full contents of path after decompression, validated
// as UTF-8.
func ReadFile(path string) ([]byte, error) {
	var r io.Reader
	if path == Stdio {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, classify(path, err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return Read(r, IsCompressed(path), path)
}

// Read consumes r, decompressing when compressed is set. name is used in
// error messages only.
func Read(r io.Reader, compressed bool, name string) ([]byte, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: could not create zstd reader: %w", ErrIO, name, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, classify(name, err)
	}
	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUndecodable, name, err)
	}
	return data, nil
}

// WriteFile replaces the contents of path with data, compressing when the
// path ends in ".zst".
func WriteFile(path string, data []byte) error {
	if path == Stdio {
		return Write(stdout, data, false, path)
	}
	var buf bytes.Buffer
	if err := Write(&buf, data, IsCompressed(path), path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return classify(path, err)
	}
	return nil
}

// Write copies data to w, compressing when compressed is set.
func Write(w io.Writer, data []byte, compressed bool, name string) error {
	if !compressed {
		if _, err := w.Write(data); err != nil {
			return classify(name, err)
		}
		return nil
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("%w: %s: could not create zstd writer: %w", ErrIO, name, err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return classify(name, err)
	}
	if err := zw.Close(); err != nil {
		return classify(name, err)
	}
	return nil
}

// classify wraps err with the matching sentinel.
func classify(name string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermission, name, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrIO, name, err)
	}
}
