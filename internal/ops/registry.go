// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     ops
// Description: Operation registry with case-insensitive lookup and aliases
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package ops

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

// Registry maps operation names and aliases to operations
type Registry struct {
	operations map[string]*Operation
	aliases    map[string]string
	logger     *log.Logger
	mutex      sync.RWMutex
}

// NewRegistry creates an empty registry. A nil logger uses the default logger.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.GetDefault()
	}
	return &Registry{
		operations: make(map[string]*Operation),
		aliases:    make(map[string]string),
		logger:     logger.WithField("component", "ops-registry"),
	}
}

// Register adds an operation. Names and aliases must be unique.
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.run == nil {
		return mdwerror.New("operation must have a run function").
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("ops.Register")
	}

	name := normalize(op.Name)
	if name == "" {
		return mdwerror.New("operation name cannot be empty").
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("ops.Register")
	}
	if op.MinArgs < 0 || op.MaxArgs < op.MinArgs {
		return mdwerror.New(fmt.Sprintf("operation %s has an invalid argument range %d..%d", name, op.MinArgs, op.MaxArgs)).
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("ops.Register").
			WithDetail("operation", name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	keys := append([]string{name}, op.Aliases...)
	for _, key := range keys {
		key = normalize(key)
		if r.taken(key) {
			return mdwerror.New(fmt.Sprintf("operation name %s already registered", key)).
				WithCode(mdwerror.CodeInvalidOperation).
				WithOperation("ops.Register").
				WithDetail("operation", name)
		}
	}

	op.Name = name
	r.operations[name] = op
	for _, alias := range op.Aliases {
		r.aliases[normalize(alias)] = name
	}

	r.logger.Trace("operation registered", log.Fields{
		"operation": name,
		"aliases":   len(op.Aliases),
	})

	return nil
}

func (r *Registry) taken(key string) bool {
	if _, exists := r.operations[key]; exists {
		return true
	}
	_, exists := r.aliases[key]
	return exists
}

// Lookup finds an operation by name or alias, ignoring case
func (r *Registry) Lookup(name string) (*Operation, error) {
	key := normalize(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	op, ok := r.operations[key]
	if !ok {
		return nil, errors.OpsUnknownOperation(name)
	}
	return op, nil
}

// Names returns the registered operation names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operations returns the registered operations ordered by name
func (r *Registry) Operations() []*Operation {
	names := r.Names()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*Operation, 0, len(names))
	for _, name := range names {
		result = append(result, r.operations[name])
	}
	return result
}

// Execute runs the named operation on tv. Errors of the text value are
// returned unchanged so callers can test their code.
func (r *Registry) Execute(tv *textvalue.TextValue, name string, args []string) (Result, error) {
	op, err := r.Lookup(name)
	if err != nil {
		r.logger.Debug("unknown operation", log.String("operation", name))
		return Result{}, err
	}

	if len(args) < op.MinArgs || len(args) > op.MaxArgs {
		return Result{}, errors.OpsArgumentCount(op.Name, len(args), op.arity())
	}

	timer := r.logger.StartTimer("ops." + op.Name).WithField("args", len(args))
	result, err := op.run(tv, args)
	if err != nil {
		timer.WithField("success", false).Stop()
		return Result{}, err
	}
	timer.Stop()

	result.Operation = op.Name
	result.Value = tv.String()
	return result, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
