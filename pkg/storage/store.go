// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package storage

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/quietdesk/qcalc/pkg/engine"
	"github.com/quietdesk/qcalc/pkg/vault"
)

// Collection keys. Each holds one whole-collection JSON snapshot.
const (
	keyNotes   = "notes"
	keyHistory = "history"
)

// =============================================================================
// Snapshot Store
// =============================================================================

// Store reads and writes the notes and history collections as whole
// JSON snapshots.
//
// # Description
//
// Store implements the degrade-silently contract: loads that find no
// key, or fail to read or parse, return an empty collection; saves that
// fail are logged and otherwise ignored. The caller's in-memory state
// is authoritative and never waits on a save for correctness. There is
// no transaction across the two collections.
type Store struct {
	db  *DB
	log *slog.Logger
}

// NewStore wraps an open database. A nil logger discards log output.
func NewStore(db *DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, log: log}
}

// History loads the persisted calculation history, newest first.
// Returns an empty slice when nothing (readable) is stored.
func (s *Store) History() []engine.Entry {
	var entries []engine.Entry
	s.load(keyHistory, &entries)
	return entries
}

// SaveHistory persists the history snapshot. The ledger caps the
// collection before it gets here; the store does no capping itself.
func (s *Store) SaveHistory(entries []engine.Entry) {
	s.save(keyHistory, entries)
}

// Notes loads the persisted notes collection, newest first by
// convention. Returns an empty slice when nothing (readable) is stored.
func (s *Store) Notes() []vault.Note {
	var notes []vault.Note
	s.load(keyNotes, &notes)
	return notes
}

// SaveNotes persists the notes snapshot.
func (s *Store) SaveNotes(notes []vault.Note) {
	s.save(keyNotes, notes)
}

// Wipe deletes both collections. Unlike the snapshot methods this
// reports failure, because it backs an explicit destructive command.
func (s *Store) Wipe() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(keyNotes)); err != nil {
			return err
		}
		return txn.Delete([]byte(keyHistory))
	})
}

// load reads and unmarshals one collection snapshot into out. Absent
// keys and any read or parse failure leave out untouched.
func (s *Store) load(key string, out any) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		s.log.Warn("collection load failed, treating as empty",
			"key", key, "error", err)
	}
}

// save marshals and writes one collection snapshot. Failures are logged
// and swallowed.
func (s *Store) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("collection marshal failed, snapshot dropped",
			"key", key, "error", err)
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		s.log.Warn("collection save failed, snapshot dropped",
			"key", key, "error", err)
	}
}
