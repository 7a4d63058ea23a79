// Copyright (C) 2025 Quietdesk Software (dev@quietdesk.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// --- Global Command Variables ---
var (
	configPath string // --config override for the config file location
	forceReset bool   // --yes skips the reset confirmation

	rootCmd = &cobra.Command{
		Use:          "qcalc",
		Short:        "A small terminal calculator",
		Long:         `qcalc is a keyboard-driven arithmetic calculator for the terminal.`,
		SilenceUsage: true,
		RunE:         runApp, // Defined in cmd_run.go
	}

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Print the stored calculation history",
		RunE:  runHistory, // Defined in cmd_history.go
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "DANGER: Deletes all stored data",
		RunE:  runReset, // Defined in cmd_reset.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the qcalc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("qcalc", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.qcalc/config.yaml)")
	resetCmd.Flags().BoolVar(&forceReset, "yes", false,
		"skip the confirmation prompt")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
