// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/quadshift/internal/cipher"
	"github.com/toeirei/quadshift/internal/i18n"
)

// ErrAborted is returned when the user cancels the form.
var ErrAborted = errors.New("parameter entry aborted")

const (
	fieldN = iota
	fieldM
)

type paramsFormModel struct {
	focusIndex int
	inputs     []textinput.Model // 0: n, 1: m
	err        error
	params     cipher.Params
	done       bool
	aborted    bool
}

// newParamsFormModel builds the form. Non-nil presets prefill the fields and
// focus starts on the first empty one.
func newParamsFormModel(presetN, presetM *int) paramsFormModel {
	m := paramsFormModel{
		inputs: make([]textinput.Model, 2),
	}

	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 24
		t.Width = 24
		t.Placeholder = "0"
		switch i {
		case fieldN:
			t.Prompt = i18n.T("prompt.n")
		case fieldM:
			t.Prompt = i18n.T("prompt.m")
		}
		m.inputs[i] = t
	}

	if presetN != nil {
		m.inputs[fieldN].SetValue(strconv.Itoa(*presetN))
	}
	if presetM != nil {
		m.inputs[fieldM].SetValue(strconv.Itoa(*presetM))
	}

	start := fieldN
	if presetN != nil && presetM == nil {
		start = fieldM
	}
	m.setFocus(start)
	return m
}

func (m paramsFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m paramsFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			if m.focusIndex == fieldM {
				return m.submit()
			}
			return m, m.setFocus(m.focusIndex + 1)

		case "tab", "down":
			return m, m.setFocus(m.focusIndex + 1)

		case "shift+tab", "up":
			return m, m.setFocus(m.focusIndex - 1)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// submit validates both fields. The first invalid field takes focus.
func (m paramsFormModel) submit() (tea.Model, tea.Cmd) {
	var vals [2]int
	for i := range m.inputs {
		raw := strings.TrimSpace(m.inputs[i].Value())
		v, err := strconv.Atoi(raw)
		if err != nil {
			m.err = errors.New(i18n.T("prompt.invalid", raw))
			return m, m.setFocus(i)
		}
		vals[i] = v
	}
	m.err = nil
	m.params = cipher.Params{N: vals[fieldN], M: vals[fieldM]}
	m.done = true
	return m, tea.Quit
}

// setFocus moves focus to idx, wrapping around the inputs.
func (m *paramsFormModel) setFocus(idx int) tea.Cmd {
	n := len(m.inputs)
	m.focusIndex = ((idx % n) + n) % n

	cmds := make([]tea.Cmd, n)
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return tea.Batch(cmds...)
}

func (m *paramsFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m paramsFormModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	viewItems := []string{titleStyle.Render(i18n.T("prompt.title")), ""}
	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
	}
	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(m.err.Error()))
	}
	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("prompt.help")))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
