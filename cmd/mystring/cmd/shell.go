// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive shell
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/internal/tui/shell"
	"github.com/msto63/mystring/pkg/core/config"
)

var shellCmd = &cobra.Command{
	Use:     "shell [text]",
	Aliases: []string{"repl", "sh"},
	Short:   "Start the interactive shell",
	Long: `Starts an interactive shell holding one text value.

Each line is an operation with its arguments, e.g.
  append " Programming"
  splice 4 6 then reverse

Changes to the configuration file are picked up while the shell runs.

Keys:
  Enter       run the line
  ↑/↓         input history
  PgUp/PgDn   scroll
  Ctrl+L      clear the output
  Esc/Ctrl+C  quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg := shellConfig(args)

	if path := appConfig.Path(); path != "" {
		watcher, err := config.Watch(cmd.Context(), path, logger)
		if err != nil {
			logger.WarnWithErr("configuration reload disabled", err)
		} else {
			defer watcher.Close()
			cfg.ConfigUpdates = watcher.Updates()
		}
	}

	if err := shell.Run(cfg); err != nil {
		return fail(errors.OperationFailed(errors.ModuleCLI, "shell", err))
	}
	return nil
}

func shellConfig(args []string) shell.Config {
	cfg := shell.Config{
		Policy:      appConfig.Policy(),
		Prompt:      appConfig.Shell.Prompt,
		HistorySize: appConfig.Shell.HistorySize,
		Registry:    registry,
		Logger:      logger,
		PinPolicy:   policyFlag != "",
	}
	if len(args) == 1 {
		cfg.Initial = args[0]
	}
	return cfg
}
