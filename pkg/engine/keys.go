// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package engine implements the calculator core: the expression buffer
// editor, the arithmetic evaluator, the secret-sequence trigger, and the
// bounded calculation history.
//
// # Description
//
// Everything in this package is pure logic with no I/O. State types use
// value semantics and return updated copies, so a keypress is a single
// synchronous transform: UI key -> Session.Press -> new state + effect.
// Persistence of the history ledger is the caller's concern.
//
// # Thread Safety
//
// Types in this package are plain values and are not synchronized. They
// are designed for a single-threaded event loop (one keypress at a time).
package engine

// =============================================================================
// Keypad Keys
// =============================================================================

// KeyKind is the closed set of calculator key categories.
type KeyKind int

const (
	// KindDigit is one of the keys 0-9. Key.Rune holds the digit.
	KindDigit KeyKind = iota

	// KindOperator is one of + - * /. Key.Rune holds the operator.
	KindOperator

	// KindDecimal is the decimal point key.
	KindDecimal

	// KindEquals requests evaluation of the current buffer.
	KindEquals

	// KindClear resets the buffer, the displayed result, and the
	// history ledger.
	KindClear

	// KindDelete removes the last character from the buffer.
	KindDelete
)

// Key is a single keypad press.
type Key struct {
	// Kind categorizes the key.
	Kind KeyKind

	// Rune carries the concrete character for KindDigit and
	// KindOperator keys. Zero otherwise.
	Rune byte
}

// Digit returns a digit key for the character c ('0'..'9').
func Digit(c byte) Key {
	return Key{Kind: KindDigit, Rune: c}
}

// Operator returns an operator key for the character c (one of + - * /).
func Operator(c byte) Key {
	return Key{Kind: KindOperator, Rune: c}
}

// Decimal returns the decimal point key.
func Decimal() Key {
	return Key{Kind: KindDecimal}
}

// Equals returns the evaluate key.
func Equals() Key {
	return Key{Kind: KindEquals}
}

// Clear returns the clear key.
func Clear() Key {
	return Key{Kind: KindClear}
}

// Delete returns the single-character delete key.
func Delete() Key {
	return Key{Kind: KindDelete}
}

// isOperator reports whether c is one of the four operator characters.
func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
