// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and logger setup
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
	"github.com/msto63/mystring/internal/ops"
	"github.com/msto63/mystring/pkg/core/config"
)

var (
	cfgFile    string
	policyFlag string
	logFormat  string
	verbose    bool

	appConfig *config.Config
	logger    = log.NewNop()
	registry  *ops.Registry
)

var rootCmd = &cobra.Command{
	Use:   "mystring",
	Short: "mystring - text value toolkit",
	Long: `mystring holds a text value and applies character level operations
to it: append, replace, reverse, length, word count, palindrome check,
splice, split and sort.

Commands:
  exec     - apply a chain of operations to a text
  shell    - interactive shell on one text value
  demo     - walk through every operation
  ops      - list the available operations`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failing error to stderr
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) {
		return mdwErr.Code().ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MYSTRING_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "argument policy: defensive or permissive")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text, console or logfmt")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}

// setup loads the configuration, applies flag overrides and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if policyFlag != "" {
		appConfig.TextValue.Policy = policyFlag
	}
	if logFormat != "" {
		appConfig.General.LogFormat = logFormat
	}
	if verbose {
		appConfig.General.LogLevel = log.LevelDebug.String()
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logger = log.NewWithConfig(log.Config{
		Level:         appConfig.LogLevel(),
		Format:        appConfig.LogFormat(),
		Output:        cmd.ErrOrStderr(),
		Name:          appConfig.General.Name,
		CorrelationID: uuid.NewString(),
	})
	log.SetDefault(logger)
	registry = ops.Default(logger)

	logger.Debug("configuration loaded", log.Fields{
		"path":    appConfig.Path(),
		"policy":  appConfig.TextValue.Policy,
		"command": cmd.Name(),
	})
	return nil
}

// newValue creates a text value with the configured policy
func newValue(initial string) *textvalue.TextValue {
	return textvalue.New(initial, textvalue.WithPolicy(appConfig.Policy()))
}

// fail logs err and returns it for cobra
func fail(err error, fields ...log.Fields) error {
	logger.LogError(err, fields...)
	return err
}

func printError(w io.Writer, err error) {
	var mdwErr *mdwerror.Error
	if stderrors.As(err, &mdwErr) && mdwErr.Code() != mdwerror.CodeUnknown {
		fmt.Fprintf(w, "Error [%s]: %v\n", mdwErr.Code(), err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
