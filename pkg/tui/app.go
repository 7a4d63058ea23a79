// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package tui implements the terminal screens: the calculator, the
// hidden vault list, and the note editor.
//
// # Description
//
// A single root model owns the three screens and switches between them.
// The vault is reachable only through the secret trigger raised by the
// calculator screen; leaving the vault lands back on the calculator
// with its default state, so a shoulder-surfer sees an ordinary
// calculator before and after.
//
// # Thread Safety
//
// Models run inside the bubbletea event loop and are single-threaded.
// Persistence callbacks run in command goroutines but only touch the
// storage layer, which is safe for concurrent use.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietdesk/qcalc/pkg/engine"
	"github.com/quietdesk/qcalc/pkg/vault"
)

// =============================================================================
// Screens
// =============================================================================

// screen identifies the active screen.
type screen int

const (
	screenCalculator screen = iota
	screenVault
	screenEditor
)

// =============================================================================
// Root Model
// =============================================================================

// App is the root bubbletea model.
type App struct {
	active screen

	calculator calculatorModel
	vault      vaultModel
	editor     editorModel

	lastSize tea.WindowSizeMsg
}

// NewApp assembles the screens.
//
// Inputs:
//
//	session - The calculator session, with history already restored.
//	notes - The vault notes service.
//	saveHistory - Callback persisting a ledger snapshot. May be nil.
//
// Outputs:
//
//	App - Ready for tea.NewProgram.
func NewApp(session *engine.Session, notes *vault.Service, saveHistory func([]engine.Entry)) App {
	return App{
		calculator: newCalculatorModel(session, saveHistory),
		vault:      newVaultModel(notes),
		editor:     newEditorModel(notes),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Every screen tracks the size so switching needs no resize.
		a.lastSize = msg
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.calculator, cmd = a.calculator.Update(msg)
		cmds = append(cmds, cmd)
		a.vault, cmd = a.vault.Update(msg)
		cmds = append(cmds, cmd)
		a.editor, cmd = a.editor.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case vaultRequestedMsg:
		a.vault.reload()
		a.active = screenVault
		return a, nil

	case leaveVaultMsg:
		a.active = screenCalculator
		return a, nil

	case openNoteMsg:
		a.editor = a.editor.open(msg.id)
		a.active = screenEditor
		return a, nil

	case closeEditorMsg:
		a.vault.reload()
		a.active = screenVault
		return a, nil
	}

	var cmd tea.Cmd
	switch a.active {
	case screenCalculator:
		a.calculator, cmd = a.calculator.Update(msg)
	case screenVault:
		a.vault, cmd = a.vault.Update(msg)
	case screenEditor:
		a.editor, cmd = a.editor.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var view string
	switch a.active {
	case screenCalculator:
		view = a.calculator.View()
	case screenVault:
		view = a.vault.View()
	case screenEditor:
		view = a.editor.View()
	}
	return strings.TrimRight(view, "\n") + "\n"
}

// Run starts the TUI on the alternate screen and blocks until exit.
func Run(app App) error {
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
