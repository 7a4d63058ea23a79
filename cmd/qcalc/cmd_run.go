// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/quietdesk/qcalc/pkg/config"
	"github.com/quietdesk/qcalc/pkg/engine"
	"github.com/quietdesk/qcalc/pkg/logging"
	"github.com/quietdesk/qcalc/pkg/storage"
	"github.com/quietdesk/qcalc/pkg/tui"
	"github.com/quietdesk/qcalc/pkg/vault"
)

// runApp launches the full-screen calculator.
func runApp(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("qcalc needs a terminal; try `qcalc history` for scripted use")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logging goes to file only.
	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		LogDir:  cfg.LogDir,
		Service: "qcalc",
		Quiet:   true,
	})
	defer log.Close()

	db, err := storage.Open(storage.DefaultConfig(cfg.DataDir))
	if err != nil {
		return fmt.Errorf("open data store: %w", err)
	}
	defer db.Close()

	store := storage.NewStore(db, log.Slog())

	session := engine.NewSession(engine.Config{
		Secret:       cfg.Secret,
		HistoryLimit: cfg.HistoryLimit,
	})
	session.RestoreHistory(store.History())

	notes := vault.NewService(store)

	log.Info("session starting",
		"history_entries", len(session.History()),
		"notes", notes.Len(),
	)

	app := tui.NewApp(session, notes, store.SaveHistory)
	if err := tui.Run(app); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	log.Info("session ended")
	return nil
}
