package argparse

import (
	"errors"
	"reflect"
)

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse outcomes to process exit codes.
type ExitCodeManager struct {
	byCategory map[Category]int
	byType     map[reflect.Type]int
	defaults   ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		byCategory: make(map[Category]int),
		byType:     make(map[reflect.Type]int),
		defaults:   defaultExitDefaults(),
	}
	m.prewire()
	return m
}

func (e *ExitCodeManager) prewire() {
	d := e.defaults
	e.byCategory[CategorySuccess] = d.Success
	e.byCategory[CategoryHelpRequested] = d.Success
	for _, c := range []Category{CategorySyntax, CategoryType, CategoryRange, CategoryRequired, CategoryUnknownArgument} {
		e.byCategory[c] = d.MisusageError
	}
	e.byCategory[CategoryValidation] = d.ValidationError
}

// DefineCategory overrides the exit code for one category.
func (e *ExitCodeManager) DefineCategory(c Category, code int) *ExitCodeManager {
	e.byCategory[c] = code
	return e
}

// DefineError maps errors of err's dynamic type to code. Category mappings
// are consulted first.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.byType[reflect.TypeOf(err)] = code
	return e
}

// Default replaces the default codes and re-derives the category mappings.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	clear(e.byCategory)
	e.prewire()
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. nil is Success
//  2. *Error category mapping
//  3. concrete error type mapping
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}
	var perr *Error
	if errors.As(err, &perr) {
		if code, ok := e.byCategory[perr.Category]; ok {
			return code
		}
		return e.defaults.GeneralError
	}
	for t, code := range e.byType {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}
	return e.defaults.GeneralError
}

// ExitCode resolves err with the parser's exit-code mapping.
func (p *Parser) ExitCode(err error) int { return p.exits.Resolve(err) }
