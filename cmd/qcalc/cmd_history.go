// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quietdesk/qcalc/pkg/config"
	"github.com/quietdesk/qcalc/pkg/logging"
	"github.com/quietdesk/qcalc/pkg/storage"
)

// runHistory prints the stored ledger, newest first, without starting
// the TUI. The vault is deliberately not reachable this way.
func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
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

	entries := storage.NewStore(db, log.Slog()).History()
	if len(entries) == 0 {
		fmt.Println("no calculations recorded")
		return nil
	}

	for _, e := range entries {
		ts := time.UnixMilli(e.Timestamp).Format("2006-01-02 15:04:05")
		fmt.Printf("%s  %s = %s\n", ts, e.Expression, e.Result)
	}
	return nil
}
