// Package error provides structured error handling for mystring.
//
// Package: error
// Title: mystring Error Handling Framework
// Description: This package implements a structured error type with error codes,
//              severities, details, and captured stack frames. All mystring packages
//              return *Error so that callers, the logger and the command line tool
//              can classify failures by Code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set, INVALID_ARGUMENT, errors.Is by code
//
// Usage:
//
//	import mdwerror "github.com/msto63/mystring/foundation/core/error"
//
//	err := mdwerror.New("delimiter must not be empty").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("textvalue.split").
//		WithDetail("delimiter", "")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// caller mistake, report usage
//	}
package error
