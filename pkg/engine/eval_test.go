// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluateBasics covers two-operand arithmetic and precedence.
func TestEvaluateBasics(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"2+3", "5"},
		{"7-10", "-3"},
		{"6*7", "42"},
		{"9/2", "4.5"},
		{"2+3*4", "14"},
		{"2*3+4", "10"},
		{"10-4-3", "3"},    // left associative
		{"100/10/5", "2"},  // left associative
		{"2+3*4-6/2", "11"},
		{"0", "0"},
		{"69/68", "1.014705882"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEvaluateRounding verifies float artifacts are absorbed by the
// 9-decimal rounding step.
func TestEvaluateRounding(t *testing.T) {
	got, err := Evaluate("0.1+0.2")
	require.NoError(t, err)
	assert.Equal(t, "0.3", got)
}

// TestEvaluateDivisionByZero verifies division by zero is NonFinite,
// not a panic and not a huge number.
func TestEvaluateDivisionByZero(t *testing.T) {
	for _, expr := range []string{"5/0", "3/0", "0/0", "1/0*0"} {
		_, err := Evaluate(expr)
		assert.ErrorIs(t, err, ErrNonFinite, "expr %q", expr)
	}
}

// TestEvaluateMalformed verifies grammar and whitelist violations.
func TestEvaluateMalformed(t *testing.T) {
	for _, expr := range []string{
		"", "5+", "5*", "+", "*3", "1..2", ".", "2+a", "eval(1)",
		"(2+3", "2+3)", "1;2",
	} {
		_, err := Evaluate(expr)
		assert.ErrorIs(t, err, ErrMalformed, "expr %q", expr)
	}
}

// TestEvaluateGlyphNormalization verifies display glyphs are accepted.
func TestEvaluateGlyphNormalization(t *testing.T) {
	got, err := Evaluate("6×7")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = Evaluate("9÷2")
	require.NoError(t, err)
	assert.Equal(t, "4.5", got)
}

// TestEvaluateTolerated verifies input the keypad cannot produce but
// the sanitizer allows: whitespace, parentheses, leading-dot operands.
func TestEvaluateTolerated(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{" 2 + 3 ", "5"},
		{"(2+3)*4", "20"},
		{"(-3)+5", "2"},
		{".5+.5", "1"},
		{"0.5", "0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEvaluateNoExponentNotation verifies large in-range results are
// formatted as plain decimals.
func TestEvaluateNoExponentNotation(t *testing.T) {
	got, err := Evaluate("1000000*1000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000", got)
}

// TestEvaluateOverflow verifies overflow to infinity is NonFinite.
func TestEvaluateOverflow(t *testing.T) {
	expr := "999999999999999999999999999999999999999999999999999999999999"
	for i := 0; i < 6; i++ {
		expr += "*999999999999999999999999999999999999999999999999999999999999"
	}
	_, err := Evaluate(expr)
	assert.ErrorIs(t, err, ErrNonFinite)
}
