// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     ops
// Description: Splits a command line into words with shell-like quoting
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ops

import (
	"strings"

	"github.com/msto63/mystring/foundation/core/errors"
)

// Word is one argument of a command line. Literal is set when any part of it
// was quoted or escaped; a literal word is never read as a keyword.
type Word struct {
	Text    string
	Literal bool
}

// Args wraps already split arguments, such as those of a process command
// line. Quotes are gone by then, so \then stands for the plain text "then".
// Every other argument is taken as is.
func Args(args []string) []Word {
	words := make([]Word, len(args))
	for i, arg := range args {
		if strings.HasPrefix(arg, `\`) && strings.EqualFold(arg[1:], ChainSeparator) {
			words[i] = Word{Text: arg[1:], Literal: true}
			continue
		}
		words[i] = Word{Text: arg}
	}
	return words
}

// Texts returns the text of each word
func Texts(words []Word) []string {
	if words == nil {
		return nil
	}
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return texts
}

// Tokenize splits line into words at unquoted whitespace.
//
// Double quotes group words and honour backslash escapes (\" \\ \n \t).
// Single quotes group words literally. Outside quotes a backslash escapes the
// next character. A quoted empty string ("" or '') is kept as an empty word,
// which is how a caller passes an empty argument.
func Tokenize(line string) ([]Word, error) {
	var (
		words   []Word
		current strings.Builder
		inWord  bool
		literal bool
		quote   rune
		escaped bool
	)

	for _, ch := range line {
		switch {
		case escaped:
			if quote == '"' {
				ch = unescape(ch)
			}
			current.WriteRune(ch)
			escaped = false

		case quote == '\'':
			if ch == '\'' {
				quote = 0
			} else {
				current.WriteRune(ch)
			}

		case quote == '"':
			switch ch {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				current.WriteRune(ch)
			}

		case ch == '"' || ch == '\'':
			quote = ch
			inWord = true
			literal = true

		case ch == '\\':
			escaped = true
			inWord = true
			literal = true

		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			if inWord {
				words = append(words, Word{Text: current.String(), Literal: literal})
				current.Reset()
				inWord = false
				literal = false
			}

		default:
			current.WriteRune(ch)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errors.InvalidFormat(errors.ModuleOps, "tokenize", line, "closing "+string(quote)+" quote")
	}
	if escaped {
		return nil, errors.InvalidFormat(errors.ModuleOps, "tokenize", line, "a character after the trailing backslash")
	}
	if inWord {
		words = append(words, Word{Text: current.String(), Literal: literal})
	}

	return words, nil
}

func unescape(ch rune) rune {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}
