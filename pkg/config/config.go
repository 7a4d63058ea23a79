// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the optional qcalc configuration file.
//
// # Description
//
// Configuration is a single YAML file. A missing file is not an error:
// every field has a default, and the app must start clean on a fresh
// machine. An unreadable or invalid file IS an error, because silently
// ignoring an explicit config would be worse than failing loudly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the validator instance for config structs.
// Initialized in init() with the keypad-sequence validator.
var validate *validator.Validate

func init() {
	validate = validator.New()

	// A secret sequence must be typeable on the keypad: digits, the
	// four operators, and the decimal point only.
	_ = validate.RegisterValidation("keyseq", validateKeypadSequence)
}

func validateKeypadSequence(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '.':
		default:
			return false
		}
	}
	return true
}

// =============================================================================
// Config
// =============================================================================

// Config is the qcalc configuration.
type Config struct {
	// DataDir is the directory for the embedded database.
	DataDir string `yaml:"dataDir" validate:"required"`

	// LogDir is the directory for log files. Empty disables file
	// logging.
	LogDir string `yaml:"logDir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel" validate:"oneof=debug info warn error"`

	// HistoryLimit caps the calculation history.
	HistoryLimit int `yaml:"historyLimit" validate:"min=1,max=100"`

	// Secret overrides the vault-opening sequence. Empty keeps the
	// built-in default.
	Secret string `yaml:"secret" validate:"keyseq,max=64"`
}

// Default returns the configuration used when no file exists.
//
// Data and logs live under ~/.qcalc. The secret stays at the built-in
// default, which intentionally does not appear in any config template.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:      filepath.Join(home, ".qcalc", "data"),
		LogDir:       filepath.Join(home, ".qcalc", "logs"),
		LogLevel:     "info",
		HistoryLimit: 10,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".qcalc", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist.
//
// Description:
//
//	Fields absent from the file keep their defaults, so a file may set
//	only the keys it cares about. The loaded config is validated; an
//	invalid file is an error rather than a silent fallback.
//
// Inputs:
//
//	path - Config file location. Empty means DefaultPath().
//
// Outputs:
//
//	Config - The effective configuration.
//	error - Non-nil for an unreadable, unparsable, or invalid file.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
