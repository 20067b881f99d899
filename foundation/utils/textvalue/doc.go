// File: doc.go
// Title: Package Documentation for textvalue
// Description: Package textvalue provides TextValue, a mutable text holder with
//              hand-written character-level operations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package textvalue provides TextValue, a mutable sequence of characters and
// the operations that read or rewrite it.
//
// Overview
//
// A TextValue is created from a string and then changed in place by Append,
// Replace, Reverse, Splice and Sort. Len, CountOfWords, IsPalindrome and Split
// only read it. A character is one rune; there is no grapheme, locale or
// case-folding logic, and patterns are literal text.
//
// Text is stored as given. A byte that does not belong to valid UTF-8 is
// one character on its own: it counts one towards Len, can be matched and
// sorted, and comes back out of String unchanged.
//
// All operations are written out character by character instead of delegating
// to the strings, sort or slices packages, so their behaviour at the edges is
// spelled out in this package.
//
// Argument policies
//
// Some arguments have no sensible meaning: an empty replace target, an empty
// split delimiter, a negative splice start or length. The Policy of a value
// decides what happens:
//
//	PolicyDefensive (default)  INVALID_ARGUMENT error, contents unchanged
//	PolicyPermissive           empty target inserts around every character,
//	                           negative splice arguments remove nothing extra
//
// An empty split delimiter is rejected under both policies.
//
// Usage
//
//	tv := textvalue.New("Java")
//	tv.Append(" Programming")                  // "Java Programming"
//	tv.Replace("Programming", "Language")      // "Java Language"
//	tv.Reverse()                               // "egaugnaL avaJ"
//
//	words, err := textvalue.New("Java is a versatile language").Split(" ")
//	if errors.IsInvalidArgument(err) {
//		// empty delimiter
//	}
//
// Concurrency
//
// TextValue has no internal locking. A value is meant to be owned by one
// caller; share it only behind your own mutex.
package textvalue
