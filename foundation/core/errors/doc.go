// Package errors provides the standard constructors for mystring errors.
//
// Package: errors
// Title: Shared Error Construction
// Description: A thin layer over foundation/core/error. Packages describe a failure
//              by module, operation and the offending value; the builder fills in the
//              code, severity and details so that every error carries the same keys.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Usage:
//
//	import "github.com/msto63/mystring/foundation/core/errors"
//
//	if delimiter == "" {
//		return nil, errors.TextvalueEmptyPattern("split", "delimiter")
//	}
//
//	if errors.IsInvalidArgument(err) {
//		// report usage
//	}
package errors
