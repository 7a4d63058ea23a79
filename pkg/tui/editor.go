// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietdesk/qcalc/pkg/vault"
)

// =============================================================================
// Messages
// =============================================================================

// closeEditorMsg tells the root model to return to the vault list.
type closeEditorMsg struct{}

// =============================================================================
// Note Editor Screen
// =============================================================================

// editorModel edits one note's content.
type editorModel struct {
	notes *vault.Service
	area  textarea.Model

	// noteID is the note being edited, or "" for a new note.
	noteID string
}

func newEditorModel(notes *vault.Service) editorModel {
	area := textarea.New()
	area.Placeholder = "write your note"
	area.CharLimit = 0
	return editorModel{notes: notes, area: area}
}

// open prepares the editor for the given note ID ("" for new) and
// focuses the textarea.
func (m editorModel) open(id string) editorModel {
	m.noteID = id
	content := ""
	if id != "" {
		if n, ok := m.notes.Get(id); ok {
			content = n.Content
		}
	}
	m.area.SetValue(content)
	m.area.Focus()
	return m
}

// Update handles editor input.
func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.area.SetWidth(max(msg.Width-2, 20))
		m.area.SetHeight(max(msg.Height-6, 4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Discard edits.
			return m, func() tea.Msg { return closeEditorMsg{} }

		case "ctrl+s":
			m.save()
			return m, func() tea.Msg { return closeEditorMsg{} }
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// save creates or updates the note. An empty new note is dropped rather
// than saved.
func (m *editorModel) save() {
	content := m.area.Value()
	if m.noteID == "" {
		if strings.TrimSpace(content) == "" {
			return
		}
		m.notes.Create(content)
		return
	}
	m.notes.Update(m.noteID, content)
}

// View renders the editor screen.
func (m editorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("note"))
	b.WriteString("\n\n")
	b.WriteString(m.area.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+s save · esc discard"))
	return b.String()
}
