// File: pattern.go
// Title: Literal Pattern Operations
// Description: Replace and Split, the two operations that scan the contents for
//              a literal pattern. Matching is greedy, leftmost first and never
//              overlapping: a match consumes its whole span before scanning resumes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package textvalue

import (
	"github.com/msto63/mystring/foundation/core/errors"
)

// Replace substitutes every non-overlapping occurrence of target with
// replacement and returns the new contents. A target longer than the contents
// leaves them unchanged.
//
// An empty target is an INVALID_ARGUMENT error under PolicyDefensive. Under
// PolicyPermissive it matches before every character and once at the end, so
// Replace("", "-") turns "ab" into "-a-b-".
func (tv *TextValue) Replace(target, replacement string) (string, error) {
	pattern := toRunes(target)
	with := toRunes(replacement)

	if len(pattern) == 0 {
		if tv.policy == PolicyDefensive {
			return "", errors.TextvalueEmptyPattern("replace", "target")
		}
		tv.contents = interleave(tv.contents, with)
		return tv.String(), nil
	}

	out := make([]rune, 0, len(tv.contents))
	i := 0
	for i <= len(tv.contents)-len(pattern) {
		if matchAt(tv.contents, pattern, i) {
			out = append(out, with...)
			i += len(pattern)
		} else {
			out = append(out, tv.contents[i])
			i++
		}
	}
	out = append(out, tv.contents[i:]...)

	tv.contents = out
	return tv.String(), nil
}

// Split cuts the contents at every occurrence of delimiter. The result always
// has one more field than there were delimiters, so leading, trailing and
// adjacent delimiters yield empty fields. The contents are not modified.
//
// An empty delimiter is an INVALID_ARGUMENT error under every policy.
func (tv *TextValue) Split(delimiter string) ([]string, error) {
	delim := toRunes(delimiter)
	if len(delim) == 0 {
		return nil, errors.TextvalueEmptyPattern("split", "delimiter")
	}

	var parts []string
	field := make([]rune, 0, len(tv.contents))
	for i := 0; i < len(tv.contents); {
		if i <= len(tv.contents)-len(delim) && matchAt(tv.contents, delim, i) {
			parts = append(parts, fromRunes(field))
			field = field[:0]
			i += len(delim)
			continue
		}
		field = append(field, tv.contents[i])
		i++
	}
	parts = append(parts, fromRunes(field))

	return parts, nil
}

// matchAt reports whether pattern occurs in s starting at i.
// The caller guarantees i+len(pattern) <= len(s).
func matchAt(s, pattern []rune, i int) bool {
	for j := range pattern {
		if s[i+j] != pattern[j] {
			return false
		}
	}
	return true
}

// interleave puts with before every character of s and once after the last
func interleave(s, with []rune) []rune {
	out := make([]rune, 0, len(s)+(len(s)+1)*len(with))
	for _, r := range s {
		out = append(out, with...)
		out = append(out, r)
	}
	return append(out, with...)
}
