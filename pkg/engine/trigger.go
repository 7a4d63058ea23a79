// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Secret Trigger
// =============================================================================

// DefaultSecret is the expression that opens the vault when evaluated.
const DefaultSecret = "69/67"

// Trigger recognizes the secret vault-opening sequence.
//
// # Description
//
// The check is an exact equality on the full buffer content, never a
// prefix or substring match: evaluating "69/6" must not trigger
// anything even though the secret starts with it. The check runs strictly before
// evaluation on every equals press, and a match must be handled with
// feedback indistinguishable from a normal equals press, so a casual
// observer cannot tell the secret exists.
type Trigger struct {
	sequence string
}

// NewTrigger returns a trigger for the given sequence. An empty
// sequence falls back to DefaultSecret.
func NewTrigger(sequence string) Trigger {
	if sequence == "" {
		sequence = DefaultSecret
	}
	return Trigger{sequence: sequence}
}

// Matches reports whether buffer is exactly the secret sequence.
func (t Trigger) Matches(buffer string) bool {
	return buffer == t.sequence
}
