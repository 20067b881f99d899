// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the mystring error handling system.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-19 v0.2.0: Examples rewritten for text value errors

package error

import (
	"fmt"
	"os"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("delimiter must not be empty").
		WithCode(CodeInvalidArgument).
		WithOperation("textvalue.split").
		WithDetail("delimiter", "")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: delimiter must not be empty
	// Code: INVALID_ARGUMENT
	// Severity: low
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	err := Wrap(os.ErrNotExist, "config file unreadable").
		WithCode(CodeConfigError).
		WithOperation("config.Load")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Exit:", err.Code().ExitCode())

	// Output:
	// Error: config file unreadable: file does not exist
	// Code: CONFIG_ERROR
	// Exit: 3
}
