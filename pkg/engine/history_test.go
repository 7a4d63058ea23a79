// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLedgerRecordNewestFirst verifies prepend ordering.
func TestLedgerRecordNewestFirst(t *testing.T) {
	l := NewLedger(10)
	l = l.Record(NewEntry("1+1", "2"))
	l = l.Record(NewEntry("2+2", "4"))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2+2", entries[0].Expression)
	assert.Equal(t, "1+1", entries[1].Expression)
}

// TestLedgerCap verifies the eleventh entry evicts the oldest.
func TestLedgerCap(t *testing.T) {
	l := NewLedger(10)
	for i := 1; i <= 11; i++ {
		expr := fmt.Sprintf("%d+0", i)
		l = l.Record(NewEntry(expr, fmt.Sprintf("%d", i)))
	}

	entries := l.Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, "11+0", entries[0].Expression)
	assert.Equal(t, "2+0", entries[9].Expression)
}

// TestLedgerClear verifies Clear empties the ledger but keeps the cap.
func TestLedgerClear(t *testing.T) {
	l := NewLedger(3)
	l = l.Record(NewEntry("1+1", "2"))
	l = l.Clear()
	assert.Zero(t, l.Len())

	for i := 0; i < 5; i++ {
		l = l.Record(NewEntry("1+1", "2"))
	}
	assert.Equal(t, 3, l.Len())
}

// TestLedgerRestoreRecaps verifies restoring an oversized persisted
// collection re-applies the cap.
func TestLedgerRestoreRecaps(t *testing.T) {
	var stored []Entry
	for i := 0; i < 15; i++ {
		stored = append(stored, NewEntry(fmt.Sprintf("%d", i), "0"))
	}

	l := NewLedger(10).Restore(stored)
	assert.Equal(t, 10, l.Len())
	assert.Equal(t, stored[0].ID, l.Entries()[0].ID)
}

// TestLedgerValueSemantics verifies Record leaves the receiver alone.
func TestLedgerValueSemantics(t *testing.T) {
	l := NewLedger(10)
	_ = l.Record(NewEntry("1+1", "2"))
	assert.Zero(t, l.Len())
}

// TestLedgerDefaultLimit verifies the fallback cap.
func TestLedgerDefaultLimit(t *testing.T) {
	l := NewLedger(0)
	for i := 0; i < 25; i++ {
		l = l.Record(NewEntry("1+1", "2"))
	}
	assert.Equal(t, DefaultHistoryLimit, l.Len())
}

// TestNewEntryFields verifies entry construction.
func TestNewEntryFields(t *testing.T) {
	e := NewEntry("2+3", "5")
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "2+3", e.Expression)
	assert.Equal(t, "5", e.Result)
	assert.Positive(t, e.Timestamp)
}
