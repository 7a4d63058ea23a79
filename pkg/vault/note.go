// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package vault holds the hidden notes behind the calculator.
//
// # Description
//
// The vault is deliberately plain: notes are unencrypted local records
// guarded only by the secrecy of the trigger sequence, and there is a
// single local writer. Persistence goes through a Store collaborator
// that follows the whole-snapshot, degrade-silently contract.
package vault

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Note is one private note in the vault.
type Note struct {
	ID      string `json:"id"`
	Content string `json:"content"`

	// CreatedAt and UpdatedAt are Unix milliseconds.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// NewNote creates a note with a fresh ID and timestamps.
func NewNote(content string) Note {
	now := time.Now().UnixMilli()
	return Note{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Title returns the first line of the note, for list display.
func (n Note) Title() string {
	line, _, _ := strings.Cut(n.Content, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "(empty note)"
	}
	return line
}
