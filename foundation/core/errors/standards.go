// File: standards.go
// Title: Error Standards for mystring
// Description: Module identifiers and the mapping from module/operation pairs to
//              error codes used by the ErrorBuilder when no code is given.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: Module identifiers for textvalue, ops, config and cli

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextvalue = "textvalue"
	ModuleOps       = "ops"
	ModuleConfig    = "config"
	ModuleCLI       = "cli"
)

// qualify returns the "module.operation" form stored as the error operation
func qualify(module, operation string) string {
	if operation == "" {
		return module
	}
	return fmt.Sprintf("%s.%s", module, operation)
}

// getModuleErrorCode derives a code for errors built without an explicit one
func getModuleErrorCode(module, operation string) mdwerror.Code {
	if operation == "" {
		return mdwerror.Code(fmt.Sprintf("%s_ERROR", strings.ToUpper(module)))
	}
	return mdwerror.Code(fmt.Sprintf("%s_%s_FAILED", strings.ToUpper(module), strings.ToUpper(operation)))
}
