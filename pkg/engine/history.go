// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// History Ledger
// =============================================================================

// DefaultHistoryLimit is the number of calculations the ledger keeps.
const DefaultHistoryLimit = 10

// Entry is one past successful calculation. Entries are immutable after
// creation; the ledger only evicts them.
type Entry struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Result     string `json:"result"`

	// Timestamp is Unix milliseconds at creation time.
	Timestamp int64 `json:"timestamp"`
}

// NewEntry creates an entry for a successful evaluation.
func NewEntry(expression, result string) Entry {
	return Entry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// Ledger is the bounded, newest-first record of past calculations.
//
// # Description
//
// Ledger is a pure value: Record and Clear return a new ledger and
// leave the receiver untouched. Recording an entry beyond the limit
// evicts the oldest. Persistence is the caller's concern; the ledger is
// always capped before it reaches storage.
type Ledger struct {
	limit   int
	entries []Entry
}

// NewLedger returns an empty ledger holding at most limit entries.
// A non-positive limit falls back to DefaultHistoryLimit.
func NewLedger(limit int) Ledger {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return Ledger{limit: limit}
}

// Restore returns a ledger seeded with previously persisted entries,
// re-capping in case the stored collection exceeds the limit.
func (l Ledger) Restore(entries []Entry) Ledger {
	n := len(entries)
	if n > l.limit {
		n = l.limit
	}
	restored := make([]Entry, n)
	copy(restored, entries[:n])
	return Ledger{limit: l.limit, entries: restored}
}

// Record prepends an entry and truncates to the limit.
func (l Ledger) Record(e Entry) Ledger {
	entries := make([]Entry, 0, len(l.entries)+1)
	entries = append(entries, e)
	entries = append(entries, l.entries...)
	if len(entries) > l.limit {
		entries = entries[:l.limit]
	}
	return Ledger{limit: l.limit, entries: entries}
}

// Clear returns an empty ledger with the same limit.
func (l Ledger) Clear() Ledger {
	return Ledger{limit: l.limit}
}

// Entries returns the calculations newest first. The slice is a copy;
// callers cannot reach the ledger's internal state through it.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded calculations.
func (l Ledger) Len() int {
	return len(l.entries)
}
