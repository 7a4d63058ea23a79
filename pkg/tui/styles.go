// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the calculator and vault screens. Kept deliberately drab:
// the app must look like a plain utility, not like it is hiding
// something.
var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Align(lipgloss.Right)

	resultStyle = lipgloss.NewStyle().
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	opKeyStyle = keyStyle.
			Foreground(lipgloss.Color("6"))

	historyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Underline(true)

	historyEntryStyle = lipgloss.NewStyle().
				Faint(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)
