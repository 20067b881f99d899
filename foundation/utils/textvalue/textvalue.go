// File: textvalue.go
// Title: Mutable Text Value
// Description: Implements TextValue, a mutable owned sequence of characters with
//              append, reverse, splice, sort and the read-only queries. Every
//              operation walks the contents one character at a time; mutating
//              operations build a new sequence and swap it in.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Invalid UTF-8 bytes are kept verbatim

package textvalue

import (
	"math"
	"unicode/utf8"

	"github.com/msto63/mystring/foundation/core/errors"
)

// TextValue holds a mutable sequence of characters. A character is one rune;
// a byte that is not part of valid UTF-8 counts as one character of its own and
// is written back unchanged.
//
// A TextValue is not safe for concurrent use; callers that share one must
// serialise access themselves.
type TextValue struct {
	contents []rune
	policy   Policy
}

// New creates a TextValue holding initial verbatim. The default policy is
// PolicyDefensive.
func New(initial string, opts ...Option) *TextValue {
	tv := &TextValue{
		contents: toRunes(initial),
		policy:   PolicyDefensive,
	}
	for _, opt := range opts {
		opt(tv)
	}
	return tv
}

// String returns the current contents
func (tv *TextValue) String() string {
	return fromRunes(tv.contents)
}

// Policy returns the argument policy of the value
func (tv *TextValue) Policy() Policy {
	return tv.policy
}

// SetPolicy changes the argument policy for later operations
func (tv *TextValue) SetPolicy(p Policy) {
	tv.policy = p
}

// Reset replaces the contents with s, keeping the policy
func (tv *TextValue) Reset(s string) {
	tv.contents = toRunes(s)
}

// Len returns the number of characters
func (tv *TextValue) Len() int {
	return len(tv.contents)
}

// Append adds suffix to the end and returns the new contents
func (tv *TextValue) Append(suffix string) string {
	add := toRunes(suffix)
	out := make([]rune, 0, len(tv.contents)+len(add))
	out = append(out, tv.contents...)
	out = append(out, add...)
	tv.contents = out
	return tv.String()
}

// Reverse reverses the contents in place
func (tv *TextValue) Reverse() {
	n := len(tv.contents)
	out := make([]rune, n)
	for k := 0; k < n; k++ {
		out[k] = tv.contents[n-1-k]
	}
	tv.contents = out
}

// CountOfWords counts runs of non-space characters. Only the ASCII space
// separates words; tabs and newlines are part of a word.
func (tv *TextValue) CountOfWords() int {
	start, end := 0, len(tv.contents)
	for start < end && tv.contents[start] == ' ' {
		start++
	}
	for end > start && tv.contents[end-1] == ' ' {
		end--
	}
	if start == end {
		return 0
	}

	count := 1
	for i := start; i < end-1; i++ {
		if tv.contents[i] == ' ' && tv.contents[i+1] != ' ' {
			count++
		}
	}
	return count
}

// IsPalindrome reports whether the contents read the same in both directions.
// Comparison is exact: case and spaces count.
func (tv *TextValue) IsPalindrome() bool {
	left, right := 0, len(tv.contents)-1
	for left < right {
		if tv.contents[left] != tv.contents[right] {
			return false
		}
		left++
		right--
	}
	return true
}

// Splice removes the characters in [start, start+deleteLength) and returns the
// new contents. Indices past the end are ignored, so a range running off the end
// removes through the last character.
//
// Under PolicyDefensive a negative start or deleteLength is an INVALID_ARGUMENT
// error and the contents are left untouched. Under PolicyPermissive they are
// accepted and only the part of the range inside the contents is removed.
func (tv *TextValue) Splice(start, deleteLength int) (string, error) {
	if tv.policy == PolicyDefensive {
		if start < 0 {
			return "", errors.TextvalueNegativeIndex("splice", "start", start)
		}
		if deleteLength < 0 {
			return "", errors.TextvalueNegativeIndex("splice", "deleteLength", deleteLength)
		}
	}

	end := start + deleteLength
	switch {
	case deleteLength > 0 && end < start:
		end = math.MaxInt
	case deleteLength < 0 && end > start:
		end = math.MinInt
	}

	out := make([]rune, 0, len(tv.contents))
	for i, r := range tv.contents {
		if i < start || i >= end {
			out = append(out, r)
		}
	}
	tv.contents = out
	return tv.String(), nil
}

// Sort orders the characters by code point and returns the new contents.
// It is an exchange sort: each pass bubbles the largest remaining character
// to the end of the unsorted prefix.
func (tv *TextValue) Sort() string {
	chars := make([]rune, len(tv.contents))
	copy(chars, tv.contents)

	for i := 0; i < len(chars)-1; i++ {
		for j := 0; j < len(chars)-i-1; j++ {
			if chars[j] > chars[j+1] {
				chars[j], chars[j+1] = chars[j+1], chars[j]
			}
		}
	}

	tv.contents = chars
	return tv.String()
}

// rawByteBase maps an invalid UTF-8 byte b (always >= 0x80) to the lone
// surrogate rawByteBase+b. Decoding valid UTF-8 never yields a surrogate, so
// the mapping is reversible.
const rawByteBase = 0xDC00

// toRunes decodes s one character at a time
func toRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByteBase + rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

// fromRunes encodes characters back into a string, restoring raw bytes
func fromRunes(chars []rune) string {
	buf := make([]byte, 0, len(chars))
	for _, r := range chars {
		if r >= rawByteBase+0x80 && r <= rawByteBase+0xFF {
			buf = append(buf, byte(r-rawByteBase))
			continue
		}
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}
