// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/quadshift/internal/cipher"
)

// PromptParams runs the parameter form on the given terminal streams and
// returns the entered key. Cancelling the form yields ErrAborted.
func PromptParams(in io.Reader, out io.Writer) (cipher.Params, error) {
	return PromptParamsWith(in, out, nil, nil)
}

// PromptParamsWith is PromptParams with n and/or m prefilled.
func PromptParamsWith(in io.Reader, out io.Writer, n, m *int) (cipher.Params, error) {
	p := tea.NewProgram(newParamsFormModel(n, m), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return cipher.Params{}, fmt.Errorf("parameter form: %w", err)
	}
	fm, ok := final.(paramsFormModel)
	if !ok {
		return cipher.Params{}, fmt.Errorf("parameter form: unexpected model %T", final)
	}
	if fm.aborted || !fm.done {
		return cipher.Params{}, ErrAborted
	}
	return fm.params, nil
}
