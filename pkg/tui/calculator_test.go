// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietdesk/qcalc/pkg/engine"
)

// TestMapKey verifies terminal keys translate onto the keypad.
func TestMapKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want engine.Key
	}{
		{keyRune('7'), engine.Digit('7')},
		{keyRune('+'), engine.Operator('+')},
		{keyRune('*'), engine.Operator('*')},
		{keyRune('.'), engine.Decimal()},
		{keyRune('='), engine.Equals()},
		{keyRune('c'), engine.Clear()},
		{keyRune('C'), engine.Clear()},
		{tea.KeyMsg{Type: tea.KeyEnter}, engine.Equals()},
		{tea.KeyMsg{Type: tea.KeyBackspace}, engine.Delete()},
	}
	for _, tt := range tests {
		got, ok := mapKey(tt.msg)
		require.True(t, ok, "key %s", tt.msg.String())
		assert.Equal(t, tt.want, got)
	}
}

// TestMapKeyIgnoresUnknown verifies unrelated keys do not reach the
// session.
func TestMapKeyIgnoresUnknown(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		keyRune('x'),
		keyRune('('),
		{Type: tea.KeyTab},
		{Type: tea.KeyUp},
	} {
		_, ok := mapKey(msg)
		assert.False(t, ok, "key %s", msg.String())
	}
}

// TestCalculatorViewShowsKeypad verifies the grid renders with the
// display glyphs.
func TestCalculatorViewShowsKeypad(t *testing.T) {
	m := newCalculatorModel(engine.NewSession(engine.Config{}), nil)
	view := m.View()
	for _, label := range []string{"7", "÷", "×", "=", "C"} {
		assert.Contains(t, view, label)
	}
}
