// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package vault

import "time"

// =============================================================================
// Store Collaborator
// =============================================================================

// Store is the persistence collaborator for the notes collection.
//
// Implementations read and write the collection as a whole snapshot.
// A load that finds nothing, or fails, yields an empty collection; a
// save that fails is a silent no-op. The Service's in-memory state is
// authoritative either way.
type Store interface {
	Notes() []Note
	SaveNotes(notes []Note)
}

// =============================================================================
// Service
// =============================================================================

// Service owns the in-memory notes collection and pushes snapshots to
// the store after each mutation.
//
// # Thread Safety
//
// Service is designed for the single-threaded TUI event loop and is not
// synchronized.
type Service struct {
	store Store
	notes []Note
}

// NewService loads the persisted collection and returns a ready service.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		notes: store.Notes(),
	}
}

// List returns the notes, newest first. The slice is a copy.
func (s *Service) List() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Service) Len() int {
	return len(s.notes)
}

// Create adds a note at the front of the collection and persists.
func (s *Service) Create(content string) Note {
	n := NewNote(content)
	s.notes = append([]Note{n}, s.notes...)
	s.store.SaveNotes(s.notes)
	return n
}

// Update replaces the content of the note with the given ID and
// persists. Unknown IDs are ignored.
func (s *Service) Update(id, content string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Content = content
			s.notes[i].UpdatedAt = time.Now().UnixMilli()
			s.store.SaveNotes(s.notes)
			return
		}
	}
}

// Delete removes the note with the given ID and persists. Unknown IDs
// are ignored.
func (s *Service) Delete(id string) {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.store.SaveNotes(s.notes)
			return
		}
	}
}

// Get returns the note with the given ID.
func (s *Service) Get(id string) (Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}
