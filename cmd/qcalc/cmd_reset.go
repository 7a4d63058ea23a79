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

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/quietdesk/qcalc/pkg/config"
	"github.com/quietdesk/qcalc/pkg/logging"
	"github.com/quietdesk/qcalc/pkg/storage"
)

// runReset wipes the notes and history collections after an explicit
// confirmation. This exists so the vault can be emptied without ever
// showing its contents on screen.
func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if !forceReset {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete ALL stored qcalc data?").
				Description("This removes every note and the calculation history. There is no undo.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			return errors.New("aborted")
		}
	}

	log := logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Service: "qcalc",
	})
	defer log.Close()

	db, err := storage.Open(storage.DefaultConfig(cfg.DataDir))
	if err != nil {
		return fmt.Errorf("open data store: %w", err)
	}
	defer db.Close()

	if err := storage.NewStore(db, log.Slog()).Wipe(); err != nil {
		return fmt.Errorf("wipe data: %w", err)
	}

	log.Info("data wiped", "data_dir", cfg.DataDir)
	fmt.Println("all data deleted")
	return nil
}
