// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadshift/core"
	"github.com/toeirei/quadshift/internal/i18n"
	"github.com/toeirei/quadshift/internal/textio"
	"github.com/toeirei/quadshift/internal/tui"
)

// ErrInvalidInteger is returned when n or m is not an integer.
var ErrInvalidInteger = errors.New("invalid integer")

// errMismatch marks a failed round trip so the process exits non-zero.
var errMismatch = errors.New("round trip mismatch")

// reportedError wraps an error whose message was already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// fail prints the localized message for err and returns it marked as reported.
func fail(cmd *cobra.Command, err error, path string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), describeError(err, path))
	return reportedError{err: err}
}

// describeError maps an error to the message shown to the user. path names
// the input file for not-found errors.
func describeError(err error, path string) string {
	switch {
	case errors.Is(err, ErrInvalidInteger):
		return i18n.T("error.invalid_integer")
	case errors.Is(err, textio.ErrNotFound):
		return i18n.T("error.input_not_found", path)
	case errors.Is(err, textio.ErrUndecodable):
		return i18n.T("error.undecodable")
	case errors.Is(err, textio.ErrPermission):
		return i18n.T("error.permission")
	case errors.Is(err, textio.ErrIO):
		return i18n.T("error.io")
	case errors.Is(err, tui.ErrAborted):
		return i18n.T("error.aborted")
	case errors.Is(err, core.ErrNoInput):
		return i18n.T("error.no_input")
	default:
		return err.Error()
	}
}
