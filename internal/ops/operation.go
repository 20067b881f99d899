// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     ops
// Description: Named operations over a text value, shared by the command
//              line and the interactive shell
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msto63/mystring/foundation/utils/textvalue"
)

// Kind tells which field of a Result carries the answer
type Kind int

const (
	KindText Kind = iota
	KindParts
	KindNumber
	KindBool
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindParts:
		return "parts"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Result is the outcome of one executed operation.
// Value always holds the contents after the operation ran.
type Result struct {
	Operation string
	Kind      Kind
	Value     string
	Parts     []string
	Number    int
	Bool      bool
}

// Render formats the answer of the operation for display
func (r Result) Render() string {
	switch r.Kind {
	case KindParts:
		quoted := make([]string, len(r.Parts))
		for i, p := range r.Parts {
			quoted[i] = strconv.Quote(p)
		}
		return fmt.Sprintf("[%s]", strings.Join(quoted, ", "))
	case KindNumber:
		return strconv.Itoa(r.Number)
	case KindBool:
		return strconv.FormatBool(r.Bool)
	default:
		return r.Value
	}
}

// RunFunc executes an operation with arguments whose count was already checked
type RunFunc func(tv *textvalue.TextValue, args []string) (Result, error)

// Operation describes one named operation
type Operation struct {
	Name     string
	Aliases  []string
	Usage    string // argument synopsis, e.g. "<target> <replacement>"
	Summary  string
	MinArgs  int
	MaxArgs  int
	Mutating bool

	run RunFunc
}

// NewOperation creates an operation backed by run
func NewOperation(name string, minArgs, maxArgs int, run RunFunc) *Operation {
	return &Operation{
		Name:    name,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
		run:     run,
	}
}

// Synopsis returns the name followed by the usage
func (o *Operation) Synopsis() string {
	if o.Usage == "" {
		return o.Name
	}
	return o.Name + " " + o.Usage
}

// arity describes the accepted argument count
func (o *Operation) arity() string {
	switch {
	case o.MinArgs == o.MaxArgs && o.MinArgs == 1:
		return "1 argument"
	case o.MinArgs == o.MaxArgs:
		return fmt.Sprintf("%d arguments", o.MinArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", o.MinArgs, o.MaxArgs)
	}
}
