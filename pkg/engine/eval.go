// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrMalformed indicates the expression contains disallowed
	// characters or does not parse. This includes a trailing operator
	// submitted for evaluation ("5+").
	ErrMalformed = errors.New("malformed expression")

	// ErrNonFinite indicates the result is infinite or NaN, typically
	// from division by zero or overflow.
	ErrNonFinite = errors.New("result is not finite")
)

// =============================================================================
// Evaluator
// =============================================================================

// Evaluate computes an arithmetic expression over + - * / with standard
// precedence and returns the canonical result string.
//
// Description:
//
//	The expression is normalized (the display glyphs × and ÷ become *
//	and /), tokenized against the calculator alphabet, and evaluated
//	with a precedence-climbing parser. Parentheses are tolerated on
//	input even though the keypad cannot produce them. The result is
//	rounded to 9 decimal places to absorb float artifacts (0.1+0.2 is
//	"0.3", not "0.30000000000000004") and formatted without exponent
//	notation or trailing zeros.
//
// Inputs:
//
//	expr - The expression text. Whitespace is ignored.
//
// Outputs:
//
//	string - Canonical decimal result, e.g. "14" or "0.3".
//	error - ErrMalformed or ErrNonFinite. Never any other error.
func Evaluate(expr string) (string, error) {
	expr = normalize(expr)

	toks, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", ErrMalformed
	}

	p := parser{toks: toks}
	v, err := p.parseExpr(0)
	if err != nil {
		return "", err
	}
	if p.pos != len(p.toks) {
		return "", ErrMalformed
	}

	v = roundResult(v)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "", ErrNonFinite
	}
	return formatResult(v), nil
}

// normalize maps alternate multiplication and division glyphs to the
// canonical ASCII operators.
func normalize(expr string) string {
	r := strings.NewReplacer("×", "*", "÷", "/", "−", "-")
	return r.Replace(expr)
}

// roundResult rounds to 9 decimal places. Magnitudes too large for the
// scaling to stay finite are returned unchanged.
func roundResult(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*1e9) / 1e9
}

// formatResult renders v as a plain decimal with no trailing zeros and
// no exponent notation.
func formatResult(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// =============================================================================
// Tokenizer
// =============================================================================

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	op   byte
	num  float64
}

// tokenize splits expr into number, operator, and parenthesis tokens.
// Any character outside the whitelist [0-9.+-*/() and whitespace] is
// ErrMalformed.
func tokenize(expr string) ([]token, error) {
	var toks []token
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isDigit(c) || c == '.':
			j := i
			dots := 0
			for j < len(expr) && (isDigit(expr[j]) || expr[j] == '.') {
				if expr[j] == '.' {
					dots++
				}
				j++
			}
			if dots > 1 || expr[i:j] == "." {
				return nil, ErrMalformed
			}
			// A leading dot lexes as "0." so ".5" means 0.5.
			n, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, ErrMalformed
			}
			toks = append(toks, token{kind: tokNumber, num: n})
			i = j
		case isOperator(c):
			toks = append(toks, token{kind: tokOperator, op: c})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		default:
			return nil, ErrMalformed
		}
	}
	return toks, nil
}

// =============================================================================
// Parser
// =============================================================================

// precedence returns the binding power of an operator. Multiplication
// and division bind tighter than addition and subtraction; both levels
// associate left to right.
func precedence(op byte) int {
	switch op {
	case '*', '/':
		return 2
	case '+', '-':
		return 1
	default:
		return 0
	}
}

// parser is a precedence-climbing parser over the token stream.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

// parseExpr evaluates while the next operator binds at least as tightly
// as minPrec.
func (p *parser) parseExpr(minPrec int) (float64, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOperator {
			return left, nil
		}
		prec := precedence(t.op)
		if prec < minPrec {
			return left, nil
		}
		p.pos++
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return 0, err
		}
		left = apply(t.op, left, right)
	}
}

// parsePrimary parses a number, a parenthesized expression, or a unary
// sign. Division by zero is allowed to produce a non-finite value here;
// Evaluate rejects it after the final rounding step.
func (p *parser) parsePrimary() (float64, error) {
	t, ok := p.peek()
	if !ok {
		return 0, ErrMalformed
	}
	switch t.kind {
	case tokNumber:
		p.pos++
		return t.num, nil
	case tokLParen:
		p.pos++
		v, err := p.parseExpr(0)
		if err != nil {
			return 0, err
		}
		t, ok = p.peek()
		if !ok || t.kind != tokRParen {
			return 0, ErrMalformed
		}
		p.pos++
		return v, nil
	case tokOperator:
		// Unary sign, only for tolerated paren input like "(-3)".
		if t.op == '+' || t.op == '-' {
			p.pos++
			v, err := p.parsePrimary()
			if err != nil {
				return 0, err
			}
			if t.op == '-' {
				v = -v
			}
			return v, nil
		}
		return 0, ErrMalformed
	default:
		return 0, ErrMalformed
	}
}

func apply(op byte, a, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	}
	return math.NaN()
}
