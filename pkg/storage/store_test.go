// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package storage

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quietdesk/qcalc/pkg/engine"
	"github.com/quietdesk/qcalc/pkg/vault"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, nil)
}

// TestStoreEmptyLoads verifies absent keys load as empty collections,
// never as errors.
func TestStoreEmptyLoads(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.History())
	assert.Empty(t, s.Notes())
}

// TestStoreHistoryRoundTrip verifies a history snapshot survives a
// save and load.
func TestStoreHistoryRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []engine.Entry{
		engine.NewEntry("2+3", "5"),
		engine.NewEntry("6*7", "42"),
	}
	s.SaveHistory(in)

	out := s.History()
	require.Len(t, out, 2)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, "2+3", out[0].Expression)
	assert.Equal(t, "42", out[1].Result)
}

// TestStoreNotesRoundTrip verifies a notes snapshot survives a save
// and load.
func TestStoreNotesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []vault.Note{vault.NewNote("grocery list\nmilk, eggs")}
	s.SaveNotes(in)

	out := s.Notes()
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, "grocery list\nmilk, eggs", out[0].Content)
}

// TestStoreSnapshotReplaces verifies a save overwrites the whole
// collection rather than appending.
func TestStoreSnapshotReplaces(t *testing.T) {
	s := newTestStore(t)

	s.SaveHistory([]engine.Entry{engine.NewEntry("1+1", "2")})
	s.SaveHistory([]engine.Entry{engine.NewEntry("3+3", "6")})

	out := s.History()
	require.Len(t, out, 1)
	assert.Equal(t, "3+3", out[0].Expression)
}

// TestStoreCorruptSnapshotLoadsEmpty verifies unparsable stored data
// degrades to an empty collection instead of an error.
func TestStoreCorruptSnapshotLoadsEmpty(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyHistory), []byte("not json"))
	})
	require.NoError(t, err)

	s := NewStore(db, nil)
	assert.Empty(t, s.History())
}

// TestStoreWipe verifies Wipe removes both collections.
func TestStoreWipe(t *testing.T) {
	s := newTestStore(t)
	s.SaveHistory([]engine.Entry{engine.NewEntry("1+1", "2")})
	s.SaveNotes([]vault.Note{vault.NewNote("secret")})

	require.NoError(t, s.Wipe())
	assert.Empty(t, s.History())
	assert.Empty(t, s.Notes())
}

// TestStoreCollectionsIndependent verifies saving one collection does
// not touch the other.
func TestStoreCollectionsIndependent(t *testing.T) {
	s := newTestStore(t)
	s.SaveNotes([]vault.Note{vault.NewNote("keep me")})
	s.SaveHistory(nil)

	assert.Len(t, s.Notes(), 1)
	assert.Empty(t, s.History())
}

// TestOpenRequiresPath verifies persistent mode demands a directory.
func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(Config{})
	assert.Error(t, err)
}

// TestOpenPersistent verifies data survives a close and reopen.
func TestOpenPersistent(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	NewStore(db, nil).SaveNotes([]vault.Note{vault.NewNote("persisted")})
	require.NoError(t, db.Close())

	db2, err := Open(DefaultConfig(dir))
	require.NoError(t, err)
	defer db2.Close()

	out := NewStore(db2, nil).Notes()
	require.Len(t, out, 1)
	assert.Equal(t, "persisted", out[0].Content)
}
