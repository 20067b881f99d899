// Package log provides structured logging for mystring.
//
// Package: log
// Title: Structured Logging
// Description: A small structured logger with levels, persistent context fields,
//              a correlation id per run, and JSON, text, console and logfmt output.
//              Errors from foundation/core/error are logged with their code,
//              severity and details as fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "mystring",
//	})
//
//	timer := logger.StartTimer("replace")
//	result, err := tv.Replace("a", "b")
//	if err != nil {
//		timer.StopWithError(err)
//		logger.LogError(err)
//	} else {
//		timer.Stop()
//	}
package log
