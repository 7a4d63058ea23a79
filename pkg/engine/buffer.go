// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "strings"

// =============================================================================
// Expression Buffer
// =============================================================================

// emptyBuffer is the default buffer content. The buffer is never the
// empty string; deleting the last character resets it to this.
const emptyBuffer = "0"

// Buffer is the in-progress expression the user is composing.
//
// # Description
//
// Buffer enforces the editing invariants as keys are applied, so its
// content is always either "0" or a string that starts with a digit,
// contains no two consecutive operators, and has at most one decimal
// point per operand. Buffer is a value type: Apply and friends return
// an updated copy and never mutate the receiver.
type Buffer struct {
	expr string

	// justCalculated is set after a successful evaluation. The next
	// digit starts a fresh expression; the next operator chains off
	// lastResult instead.
	justCalculated bool
	lastResult     string
}

// NewBuffer returns a buffer in its default "0" state.
func NewBuffer() Buffer {
	return Buffer{expr: emptyBuffer}
}

// String returns the current expression text.
func (b Buffer) String() string {
	if b.expr == "" {
		return emptyBuffer
	}
	return b.expr
}

// JustCalculated reports whether the last action was a successful
// evaluation.
func (b Buffer) JustCalculated() bool {
	return b.justCalculated
}

// Apply applies a digit, operator, or decimal key and returns the
// updated buffer.
//
// Description:
//
//	Editing rules, in precedence order:
//	 1. After a result, a digit starts a fresh expression.
//	 2. After a result, an operator chains off the previous result.
//	 3. A digit replaces a lone "0" (leading-zero collapse).
//	 4. An operator replaces a trailing operator (no operator runs).
//	 5. A decimal point is ignored if the current operand already has one.
//	 6. Otherwise the character is appended.
//
//	Equals, Clear, and Delete are not buffer edits; they are handled by
//	Session (Equals, Clear) and Buffer.Delete.
//
// Inputs:
//
//	k - A KindDigit, KindOperator, or KindDecimal key. Other kinds are
//	    returned unchanged.
//
// Outputs:
//
//	Buffer - The updated buffer.
func (b Buffer) Apply(k Key) Buffer {
	switch k.Kind {
	case KindDigit:
		return b.applyDigit(k.Rune)
	case KindOperator:
		return b.applyOperator(k.Rune)
	case KindDecimal:
		return b.applyDecimal()
	default:
		return b
	}
}

// Delete removes the last character of the buffer.
//
// Deleting the only remaining character resets the buffer to "0", so
// Delete on "0" is idempotent. The just-calculated flag always clears.
func (b Buffer) Delete() Buffer {
	expr := b.String()
	expr = expr[:len(expr)-1]
	if expr == "" {
		expr = emptyBuffer
	}
	return Buffer{expr: expr}
}

// Reset returns the buffer to its default "0" state, dropping the
// just-calculated flag and the remembered result.
func (b Buffer) Reset() Buffer {
	return NewBuffer()
}

// WithResult marks a successful evaluation.
//
// Description:
//
//	The expression text is kept on screen; the next digit key starts a
//	fresh expression and the next operator key continues from result.
//
// Inputs:
//
//	result - The canonical result string of the evaluation just done.
//
// Outputs:
//
//	Buffer - The buffer with the just-calculated flag set.
func (b Buffer) WithResult(result string) Buffer {
	return Buffer{
		expr:           b.String(),
		justCalculated: true,
		lastResult:     result,
	}
}

func (b Buffer) applyDigit(c byte) Buffer {
	if b.justCalculated {
		return Buffer{expr: string(c)}
	}
	expr := b.String()
	if expr == emptyBuffer {
		return Buffer{expr: string(c)}
	}
	return Buffer{expr: expr + string(c)}
}

func (b Buffer) applyOperator(c byte) Buffer {
	if b.justCalculated {
		return Buffer{expr: b.lastResult + string(c)}
	}
	expr := b.String()
	if isOperator(expr[len(expr)-1]) {
		return Buffer{expr: expr[:len(expr)-1] + string(c)}
	}
	return Buffer{expr: expr + string(c)}
}

func (b Buffer) applyDecimal() Buffer {
	if b.justCalculated {
		// A decimal point after a result starts a fresh "0." operand,
		// matching the digit rule's fresh-expression behavior.
		return Buffer{expr: "0."}
	}
	expr := b.String()
	if strings.Contains(currentOperand(expr), ".") {
		return b
	}
	return Buffer{expr: expr + "."}
}

// currentOperand returns the maximal digit/decimal run after the last
// operator in expr, or all of expr when it holds no operator.
func currentOperand(expr string) string {
	for i := len(expr) - 1; i >= 0; i-- {
		if isOperator(expr[i]) {
			return expr[i+1:]
		}
	}
	return expr
}
