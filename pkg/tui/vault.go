// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietdesk/qcalc/pkg/vault"
)

// =============================================================================
// Messages
// =============================================================================

// leaveVaultMsg tells the root model to return to the calculator.
type leaveVaultMsg struct{}

// openNoteMsg tells the root model to open the editor for a note.
// Empty ID means a new note.
type openNoteMsg struct {
	id string
}

// =============================================================================
// List Items
// =============================================================================

// noteItem adapts a vault.Note to the bubbles list item interface.
type noteItem struct {
	note vault.Note
}

func (i noteItem) Title() string {
	return i.note.Title()
}

func (i noteItem) Description() string {
	return time.UnixMilli(i.note.UpdatedAt).Format("2006-01-02 15:04")
}

func (i noteItem) FilterValue() string {
	return i.note.Content
}

// =============================================================================
// Vault Screen
// =============================================================================

// vaultModel is the hidden notes list screen.
type vaultModel struct {
	notes *vault.Service
	list  list.Model

	// confirmDelete holds the ID of the note pending deletion, or ""
	// when no confirmation is in progress.
	confirmDelete string

	width  int
	height int
}

func newVaultModel(notes *vault.Service) vaultModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "vault"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := vaultModel{notes: notes, list: l}
	m.reload()
	return m
}

// reload refreshes the list items from the notes service.
func (m *vaultModel) reload() {
	notes := m.notes.List()
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n}
	}
	m.list.SetItems(items)
}

// selectedID returns the ID of the highlighted note, or "".
func (m vaultModel) selectedID() string {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.ID
	}
	return ""
}

// Update handles input on the vault list.
func (m vaultModel) Update(msg tea.Msg) (vaultModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-4, 4))
		return m, nil

	case tea.KeyMsg:
		// Resolve a pending delete confirmation first.
		if m.confirmDelete != "" {
			switch msg.String() {
			case "y", "Y":
				m.notes.Delete(m.confirmDelete)
				m.confirmDelete = ""
				m.reload()
			default:
				m.confirmDelete = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return leaveVaultMsg{} }

		case "n":
			return m, func() tea.Msg { return openNoteMsg{} }

		case "enter":
			id := m.selectedID()
			if id == "" {
				return m, nil
			}
			return m, func() tea.Msg { return openNoteMsg{id: id} }

		case "d":
			m.confirmDelete = m.selectedID()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the vault list screen.
func (m vaultModel) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.confirmDelete != "" {
		b.WriteString(errorTextStyle.Render("delete this note? y/n"))
	} else {
		b.WriteString(helpStyle.Render("n new · enter open · d delete · esc back to calculator"))
	}
	return b.String()
}
