// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     ops
// Description: Chains of operations separated by the keyword "then"
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ops

import (
	"strings"

	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

// ChainSeparator separates the steps of a chain
const ChainSeparator = "then"

// Step is one operation call of a chain
type Step struct {
	Name string
	Args []string
}

// ParseChain groups words into steps, e.g.
//
//	append " World" then reverse then length
//
// Only a bare then separates; a literal word, such as a quoted "then", is an
// argument. A separator at the start, at the end or next to another separator
// is an INVALID_INPUT error.
func ParseChain(words []Word) ([]Step, error) {
	if len(words) == 0 {
		return nil, errors.InvalidInput(errors.ModuleOps, "parse_chain", "", "at least one operation")
	}

	var steps []Step
	var current []string
	flush := func() error {
		if len(current) == 0 {
			return errors.InvalidInput(errors.ModuleOps, "parse_chain", strings.Join(Texts(words), " "),
				"an operation on each side of "+ChainSeparator)
		}
		steps = append(steps, Step{Name: current[0], Args: current[1:]})
		current = nil
		return nil
	}

	for _, w := range words {
		if !w.Literal && strings.EqualFold(w.Text, ChainSeparator) {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, w.Text)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return steps, nil
}

// Run executes steps in order and stops at the first error. The results of the
// steps that completed are returned together with the error.
func (r *Registry) Run(tv *textvalue.TextValue, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	for _, step := range steps {
		result, err := r.Execute(tv, step.Name, step.Args)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}
