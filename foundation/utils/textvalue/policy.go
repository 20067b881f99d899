// File: policy.go
// Title: Argument Policies
// Description: Selects how TextValue treats degenerate arguments: reject them
//              (defensive) or degrade gracefully the way the legacy tool did
//              (permissive).
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textvalue

import (
	"strings"

	"github.com/msto63/mystring/foundation/core/errors"
)

// Policy controls the handling of empty patterns and negative splice arguments
type Policy int

const (
	// PolicyDefensive rejects empty replace targets and negative splice
	// arguments with an INVALID_ARGUMENT error
	PolicyDefensive Policy = iota

	// PolicyPermissive accepts them: an empty target inserts the replacement
	// around every character, negative splice arguments remove nothing extra
	PolicyPermissive
)

// String returns the configuration name of the policy
func (p Policy) String() string {
	switch p {
	case PolicyDefensive:
		return "defensive"
	case PolicyPermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name; matching is case-insensitive
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "defensive", "strict":
		return PolicyDefensive, nil
	case "permissive", "legacy":
		return PolicyPermissive, nil
	default:
		return PolicyDefensive, errors.InvalidInput(errors.ModuleTextvalue, "parse_policy", name, "defensive or permissive")
	}
}

// Option configures a TextValue at construction
type Option func(*TextValue)

// WithPolicy sets the argument policy
func WithPolicy(p Policy) Option {
	return func(tv *TextValue) {
		tv.policy = p
	}
}
