// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoadMissingFileUsesDefaults verifies a fresh machine starts with
// defaults instead of an error.
func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Secret)
	assert.NotEmpty(t, cfg.DataDir)
}

// TestLoadPartialFileKeepsDefaults verifies unset keys keep defaults.
func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "historyLimit: 25\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

// TestLoadSecretOverride verifies a keypad-typeable secret is accepted.
func TestLoadSecretOverride(t *testing.T) {
	path := writeConfig(t, "secret: \"12*12\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "12*12", cfg.Secret)
}

// TestLoadRejectsUntypeableSecret verifies a secret outside the keypad
// alphabet fails validation.
func TestLoadRejectsUntypeableSecret(t *testing.T) {
	path := writeConfig(t, "secret: \"open sesame\"\n")
	_, err := Load(path)
	assert.Error(t, err)
}

// TestLoadRejectsBadLimit verifies history limit bounds.
func TestLoadRejectsBadLimit(t *testing.T) {
	for _, body := range []string{"historyLimit: 0\n", "historyLimit: 1000\n"} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, body)
	}
}

// TestLoadRejectsBadLevel verifies the log level whitelist.
func TestLoadRejectsBadLevel(t *testing.T) {
	_, err := Load(writeConfig(t, "logLevel: loud\n"))
	assert.Error(t, err)
}

// TestLoadRejectsMalformedYAML verifies parse failures are loud.
func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "historyLimit: [not a number\n"))
	assert.Error(t, err)
}
