// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories, exit statuses and severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Exit code mapping

package error

import "testing"

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidArgument, CodeInvalidOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
	}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("%s.IsValid() = false", c)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidArgument, "contract", 2},
		{CodeInvalidOperation, "contract", 2},
		{CodeInvalidInput, "validation", 2},
		{CodeInvalidFormat, "validation", 2},
		{CodeInvalidConfig, "configuration", 3},
		{CodeMissingConfig, "configuration", 3},
		{CodeNotFound, "generic", 2},
		{CodeInternal, "generic", 1},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
		alert    bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.severity.ShouldAlert(); got != tt.alert {
				t.Errorf("ShouldAlert() = %v, want %v", got, tt.alert)
			}
		})
	}
}
