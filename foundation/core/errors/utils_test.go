// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package errors

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(mdwerror.SeverityHigh).
			Build()

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation 'testmodule.test_op', got %q", err.Operation())
		}
		if err.Severity() != mdwerror.SeverityHigh {
			t.Errorf("Expected severity high, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message and code", func(t *testing.T) {
		err := NewErrorBuilder("ops").Operation("run").Build()

		if err.Error() != "ops.run failed" {
			t.Errorf("Expected 'ops.run failed', got %q", err.Error())
		}
		if err.Code() != "OPS_RUN_FAILED" {
			t.Errorf("Expected code OPS_RUN_FAILED, got %v", err.Code())
		}
	})

	t.Run("module only", func(t *testing.T) {
		err := NewErrorBuilder("cli").Build()
		if err.Error() != "cli operation failed" {
			t.Errorf("got %q", err.Error())
		}
		if err.Code() != "CLI_ERROR" {
			t.Errorf("got code %v", err.Code())
		}
	})
}

func TestStandardConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *mdwerror.Error
		code     mdwerror.Code
		contains string
	}{
		{
			name:     "invalid argument",
			err:      InvalidArgument(ModuleTextvalue, "splice", "start", -1, "must not be negative"),
			code:     mdwerror.CodeInvalidArgument,
			contains: "invalid argument start for textvalue.splice",
		},
		{
			name:     "invalid input",
			err:      InvalidInput(ModuleOps, "splice", "abc", "integer start"),
			code:     mdwerror.CodeInvalidInput,
			contains: "expected integer start",
		},
		{
			name:     "invalid format",
			err:      InvalidFormat(ModuleOps, "tokenize", `"abc`, "closed quote"),
			code:     mdwerror.CodeInvalidFormat,
			contains: "invalid format in ops.tokenize",
		},
		{
			name:     "not found",
			err:      NotFound(ModuleOps, "lookup", "frobnicate"),
			code:     mdwerror.CodeNotFound,
			contains: "frobnicate not found",
		},
		{
			name:     "operation failed",
			err:      OperationFailed(ModuleCLI, "render", errors.New("broken pipe")),
			code:     mdwerror.CodeInternal,
			contains: "broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestTextvalueHelpers(t *testing.T) {
	err := TextvalueEmptyPattern("replace", "target")
	if !IsInvalidArgument(err) {
		t.Error("TextvalueEmptyPattern should be an invalid argument")
	}
	if !IsModuleOperation(err, ModuleTextvalue, "replace") {
		t.Errorf("module/operation = %s/%s", ExtractModule(err), ExtractOperation(err))
	}
	if ExtractDetails(err)["argument"] != "target" {
		t.Errorf("argument detail = %v", ExtractDetails(err)["argument"])
	}

	neg := TextvalueNegativeIndex("splice", "deleteLength", -3)
	if ExtractDetails(neg)["value"] != -3 {
		t.Errorf("value detail = %v", ExtractDetails(neg)["value"])
	}
	if neg.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", neg.Severity())
	}
}

func TestOpsHelpers(t *testing.T) {
	unknown := OpsUnknownOperation("frob")
	if unknown.Code() != mdwerror.CodeNotFound {
		t.Errorf("Code() = %v", unknown.Code())
	}

	count := OpsArgumentCount("replace", 1, "<target> <replacement>")
	if count.Code() != mdwerror.CodeInvalidInput {
		t.Errorf("Code() = %v", count.Code())
	}
	if !strings.Contains(count.Error(), "got 1 argument(s)") {
		t.Errorf("Error() = %q", count.Error())
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("textvalue.policy", "lenient", "unknown policy")
	if err.Code() != mdwerror.CodeInvalidConfig {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Code().ExitCode() != 3 {
		t.Errorf("ExitCode() = %d", err.Code().ExitCode())
	}
}

func TestExtractFromStandardError(t *testing.T) {
	err := errors.New("plain")
	if ExtractDetails(err) != nil {
		t.Error("ExtractDetails() of standard error should be nil")
	}
	if ExtractModule(err) != "" || ExtractOperation(err) != "" {
		t.Error("standard error should have no module/operation")
	}
	if IsInvalidArgument(err) {
		t.Error("standard error is not an invalid argument")
	}
}
