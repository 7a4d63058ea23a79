// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quietdesk/qcalc/pkg/engine"
)

// =============================================================================
// Messages
// =============================================================================

// vaultRequestedMsg tells the root model to switch to the vault screen.
// Raised only by the secret trigger.
type vaultRequestedMsg struct{}

// =============================================================================
// Calculator Screen
// =============================================================================

// keypad is the on-screen button grid, for display only. Input comes
// from the keyboard; the grid exists so the app reads as a calculator.
var keypad = [][]string{
	{"C", "⌫"},
	{"7", "8", "9", "÷"},
	{"4", "5", "6", "×"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
}

// calculatorModel is the calculator screen.
//
// # Description
//
// Wraps an engine.Session, maps terminal keys onto keypad keys, and
// renders the display line, the button grid, and the bounded history
// panel. Persistence happens through fire-and-forget commands so a
// slow disk never delays the next keypress; the session state is
// authoritative (the storage contract tolerates lost writes).
type calculatorModel struct {
	session *engine.Session

	// saveHistory persists the current ledger snapshot. Wired by the
	// root model; nil in tests that don't care.
	saveHistory func([]engine.Entry)

	width  int
	height int
}

func newCalculatorModel(session *engine.Session, saveHistory func([]engine.Entry)) calculatorModel {
	return calculatorModel{
		session:     session,
		saveHistory: saveHistory,
	}
}

// Update handles one key press for the calculator screen.
func (m calculatorModel) Update(msg tea.Msg) (calculatorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key, ok := mapKey(msg)
		if !ok {
			return m, nil
		}
		return m.press(key)
	}
	return m, nil
}

// press feeds one keypad key into the session and turns the effect into
// commands.
func (m calculatorModel) press(key engine.Key) (calculatorModel, tea.Cmd) {
	switch m.session.Press(key) {
	case engine.EffectVaultRequested:
		// Stealth requirement: no feedback beyond the screen change
		// itself. The buffer is already reset; the transition looks
		// like any other equals press from the outside.
		return m, func() tea.Msg { return vaultRequestedMsg{} }

	case engine.EffectHistoryChanged, engine.EffectHistoryCleared:
		if m.saveHistory == nil {
			return m, nil
		}
		entries := m.session.History()
		return m, func() tea.Msg {
			m.saveHistory(entries)
			return nil
		}
	}
	return m, nil
}

// mapKey translates a terminal key into a keypad key.
func mapKey(msg tea.KeyMsg) (engine.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return engine.Equals(), true
	case tea.KeyBackspace:
		return engine.Delete(), true
	}

	s := msg.String()
	if len(s) != 1 {
		return engine.Key{}, false
	}
	c := s[0]
	switch {
	case c >= '0' && c <= '9':
		return engine.Digit(c), true
	case c == '+' || c == '-' || c == '*' || c == '/':
		return engine.Operator(c), true
	case c == '.':
		return engine.Decimal(), true
	case c == '=':
		return engine.Equals(), true
	case c == 'c' || c == 'C':
		return engine.Clear(), true
	}
	return engine.Key{}, false
}

// View renders the calculator screen.
func (m calculatorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("calc"))
	b.WriteString("\n\n")

	// Display: expression on top, result line under it.
	display := m.session.Expression()
	result := m.session.Display()
	resultLine := " "
	if result != "" {
		if result == engine.ErrorDisplay {
			resultLine = errorTextStyle.Render(result)
		} else {
			resultLine = resultStyle.Render("= " + result)
		}
	}
	b.WriteString(displayStyle.Width(keypadWidth()).Render(display + "\n" + resultLine))
	b.WriteString("\n")

	b.WriteString(renderKeypad())
	b.WriteString("\n")

	if hist := m.renderHistory(); hist != "" {
		b.WriteString(hist)
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type digits/operators · enter = · c clear · backspace delete · ctrl+c quit"))
	return b.String()
}

// renderKeypad draws the static button grid.
func renderKeypad() string {
	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		cells := make([]string, 0, len(row))
		for _, label := range row {
			style := keyStyle
			if !isDigitLabel(label) {
				style = opKeyStyle
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func isDigitLabel(label string) bool {
	return len(label) == 1 && label[0] >= '0' && label[0] <= '9'
}

// keypadWidth approximates the grid width so the display lines up.
func keypadWidth() int {
	// Four keys, each padded to 5 cells by border and padding.
	return 4 * 5
}

// renderHistory renders the bounded ledger, newest first.
func (m calculatorModel) renderHistory() string {
	entries := m.session.History()
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(historyTitleStyle.Render("history"))
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString(historyEntryStyle.Render(e.Expression + " = " + e.Result))
		b.WriteString("\n")
	}
	return b.String()
}
