// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Effects
// =============================================================================

// Effect tells the caller what a keypress caused beyond the state change
// it can read back from the session. The caller owns persistence and
// navigation; the session owns the in-memory truth.
type Effect int

const (
	// EffectNone means nothing outside the session changed.
	EffectNone Effect = iota

	// EffectVaultRequested means the secret sequence was evaluated.
	// The caller should open the vault with feedback identical to a
	// normal equals press.
	EffectVaultRequested

	// EffectHistoryChanged means a calculation was recorded; the
	// caller should persist the ledger snapshot.
	EffectHistoryChanged

	// EffectHistoryCleared means the clear key wiped the ledger; the
	// caller should persist the now-empty snapshot.
	EffectHistoryCleared
)

// ErrorDisplay is the literal shown for any failed evaluation. Both
// error kinds surface identically; the taxonomy guides internal
// branching only.
const ErrorDisplay = "Error"

// =============================================================================
// Session
// =============================================================================

// Config configures a calculator session.
type Config struct {
	// Secret is the vault-opening sequence. Empty means DefaultSecret.
	Secret string

	// HistoryLimit caps the ledger. Non-positive means
	// DefaultHistoryLimit.
	HistoryLimit int
}

// Session is the keypress reducer that ties the buffer, evaluator,
// trigger, and ledger together.
//
// # Description
//
// Each Press is one synchronous transaction: the effect it returns is
// resolved before the next keypress is processed, so history entries
// always reflect strict keypress order. Session performs no I/O; the
// caller persists the ledger when an effect says so and treats the
// in-memory state as authoritative in the meantime.
type Session struct {
	buffer  Buffer
	ledger  Ledger
	trigger Trigger
	display string
}

// NewSession creates a session with an empty buffer and ledger.
func NewSession(cfg Config) *Session {
	return &Session{
		buffer:  NewBuffer(),
		ledger:  NewLedger(cfg.HistoryLimit),
		trigger: NewTrigger(cfg.Secret),
	}
}

// RestoreHistory seeds the ledger from persisted entries, typically
// once at startup.
func (s *Session) RestoreHistory(entries []Entry) {
	s.ledger = s.ledger.Restore(entries)
}

// Expression returns the buffer content for display.
func (s *Session) Expression() string {
	return s.buffer.String()
}

// Display returns the result line: the last result, ErrorDisplay after
// a failed evaluation, or "" when there is nothing to show.
func (s *Session) Display() string {
	return s.display
}

// History returns the recorded calculations, newest first.
func (s *Session) History() []Entry {
	return s.ledger.Entries()
}

// Press processes one keypress and returns its effect.
//
// Description:
//
//	Digits, operators, and the decimal point edit the buffer. Delete
//	removes one character. Clear resets the buffer and display and
//	wipes the ledger in the same action. Equals checks the secret
//	trigger first; a match resets the buffer and display and requests
//	the vault without evaluating. Otherwise the buffer is evaluated:
//	on failure the display shows ErrorDisplay and the buffer is left
//	intact so the user can delete and retry; on success the result is
//	displayed and recorded.
//
// Inputs:
//
//	k - The keypress.
//
// Outputs:
//
//	Effect - What the caller must do beyond reading back state.
func (s *Session) Press(k Key) Effect {
	switch k.Kind {
	case KindDigit, KindOperator, KindDecimal:
		s.buffer = s.buffer.Apply(k)
		s.clearErrorDisplay()
		return EffectNone

	case KindDelete:
		s.buffer = s.buffer.Delete()
		if s.display == ErrorDisplay {
			s.display = ""
		}
		return EffectNone

	case KindClear:
		s.buffer = s.buffer.Reset()
		s.display = ""
		s.ledger = s.ledger.Clear()
		return EffectHistoryCleared

	case KindEquals:
		return s.pressEquals()

	default:
		return EffectNone
	}
}

func (s *Session) pressEquals() Effect {
	// Repeating equals on an untouched result is a no-op; it must not
	// duplicate the history entry.
	if s.buffer.JustCalculated() {
		return EffectNone
	}

	expr := s.buffer.String()

	// The trigger is checked strictly before evaluation so the secret
	// never reaches the evaluator or the ledger.
	if s.trigger.Matches(expr) {
		s.buffer = s.buffer.Reset()
		s.display = ""
		return EffectVaultRequested
	}

	result, err := Evaluate(expr)
	if err != nil {
		// Buffer stays intact; the user can delete and retry.
		s.display = ErrorDisplay
		return EffectNone
	}

	s.display = result
	s.ledger = s.ledger.Record(NewEntry(expr, result))
	s.buffer = s.buffer.WithResult(result)
	return EffectHistoryChanged
}

// clearErrorDisplay drops a stale "Error" once the user resumes editing.
func (s *Session) clearErrorDisplay() {
	if s.display == ErrorDisplay {
		s.display = ""
	}
}
