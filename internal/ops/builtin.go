// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     ops
// Description: The built-in operations, one per text value method
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ops

import (
	"strconv"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

// Default returns a registry holding all built-in operations
func Default(logger *log.Logger) *Registry {
	r := NewRegistry(logger)
	for _, op := range Builtins() {
		// Builtins have unique names; a failure here is a programming error.
		if err := r.Register(op); err != nil {
			panic(err)
		}
	}
	return r
}

// Builtins returns fresh definitions of the built-in operations
func Builtins() []*Operation {
	return []*Operation{
		{
			Name:    "show",
			Aliases: []string{"print", "display"},
			Summary: "Show the current contents",
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:     "append",
			Aliases:  []string{"add"},
			Usage:    "<suffix>",
			Summary:  "Add text to the end",
			MinArgs:  1,
			MaxArgs:  1,
			Mutating: true,
			run: func(tv *textvalue.TextValue, args []string) (Result, error) {
				tv.Append(args[0])
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:     "replace",
			Usage:    "<target> <replacement>",
			Summary:  "Replace every occurrence of target",
			MinArgs:  2,
			MaxArgs:  2,
			Mutating: true,
			run: func(tv *textvalue.TextValue, args []string) (Result, error) {
				if _, err := tv.Replace(args[0], args[1]); err != nil {
					return Result{}, err
				}
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:     "reverse",
			Aliases:  []string{"rev"},
			Summary:  "Reverse the characters",
			Mutating: true,
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				tv.Reverse()
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:    "length",
			Aliases: []string{"len"},
			Summary: "Count the characters",
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				return Result{Kind: KindNumber, Number: tv.Len()}, nil
			},
		},
		{
			Name:    "words",
			Aliases: []string{"countofwords", "wc"},
			Summary: "Count space separated words",
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				return Result{Kind: KindNumber, Number: tv.CountOfWords()}, nil
			},
		},
		{
			Name:    "palindrome",
			Aliases: []string{"ispalindrome"},
			Summary: "Check whether the contents read the same backwards",
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				return Result{Kind: KindBool, Bool: tv.IsPalindrome()}, nil
			},
		},
		{
			Name:     "splice",
			Usage:    "<start> <deleteLength>",
			Summary:  "Remove deleteLength characters starting at start",
			MinArgs:  2,
			MaxArgs:  2,
			Mutating: true,
			run: func(tv *textvalue.TextValue, args []string) (Result, error) {
				start, err := parseIndex("splice", "start", args[0])
				if err != nil {
					return Result{}, err
				}
				length, err := parseIndex("splice", "deleteLength", args[1])
				if err != nil {
					return Result{}, err
				}
				if _, err := tv.Splice(start, length); err != nil {
					return Result{}, err
				}
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:    "split",
			Usage:   "<delimiter>",
			Summary: "Split at every occurrence of delimiter",
			MinArgs: 1,
			MaxArgs: 1,
			run: func(tv *textvalue.TextValue, args []string) (Result, error) {
				parts, err := tv.Split(args[0])
				if err != nil {
					return Result{}, err
				}
				return Result{Kind: KindParts, Parts: parts}, nil
			},
		},
		{
			Name:     "sort",
			Summary:  "Sort the characters by code point",
			Mutating: true,
			run: func(tv *textvalue.TextValue, _ []string) (Result, error) {
				tv.Sort()
				return Result{Kind: KindText}, nil
			},
		},
		{
			Name:     "reset",
			Aliases:  []string{"set"},
			Usage:    "[text]",
			Summary:  "Replace the contents, empty without text",
			MaxArgs:  1,
			Mutating: true,
			run: func(tv *textvalue.TextValue, args []string) (Result, error) {
				text := ""
				if len(args) == 1 {
					text = args[0]
				}
				tv.Reset(text)
				return Result{Kind: KindText}, nil
			},
		},
	}
}

func parseIndex(operation, argument, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewErrorBuilder(errors.ModuleOps).
			Operation(operation).
			Messagef("%s must be an integer, got %q", argument, raw).
			Cause(err).
			Code(mdwerror.CodeInvalidInput).
			Detail("argument", argument).
			Detail("input", raw).
			Severity(mdwerror.SeverityLow).
			Build()
	}
	return n, nil
}
