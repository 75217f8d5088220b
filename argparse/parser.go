// Package argparse declares command-line options, parses an argument
// vector against them and exposes the converted values through typed
// accessors.
//
// A Parser is not safe for concurrent use. Each Parser carries its own
// error state, so independent parsers never observe each other's errors.
package argparse

import (
	"math/rand/v2"

	"github.com/xyproto/env/v2"

	argio "github.com/dzonerzy/go-argparse/io"
)

const (
	helpShort = "-h"
	helpLong  = "--help"
	helpText  = "Show this help message and exit"

	defaultProgram = "program"
)

// Parser is the argument registry together with its lookup index, value
// stores and error state.
type Parser struct {
	program     string
	description string

	args  []*Argument
	help  *Argument
	index lookupIndex
	errs  ErrorState

	io     *argio.IOManager
	logger *argio.Logger
	exits  *ExitCodeManager
}

// New creates a parser and registers the -h/--help flag. Setting
// ARGPARSE_DEBUG in the environment turns on debug logging.
func New(description string) *Parser {
	m := argio.New()
	p := &Parser{
		description: description,
		index:       lookupIndex{seed: rand.Uint64()},
		io:          m,
		logger:      argio.NewLogger(m).WithLevel(argio.LevelWarning),
		exits:       newExitCodeManager(),
	}
	if env.Bool("ARGPARSE_DEBUG") {
		p.logger.WithLevel(argio.LevelDebug)
	}
	p.help = &Argument{
		Short:     helpShort,
		Long:      helpLong,
		Type:      ArgTypeBool,
		Help:      helpText,
		Delimiter: DelimiterSeparate,
		value:     newValueStore(ArgTypeBool),
	}
	p.args = append(p.args, p.help)
	return p
}

// IO returns the manager used for help and diagnostic output.
func (p *Parser) IO() *argio.IOManager { return p.io }

// Logger returns the parser's diagnostic logger.
func (p *Parser) Logger() *argio.Logger { return p.logger }

// ExitCodes returns the category to exit-code mapping.
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exits }

// Debug toggles debug logging of index and token decisions.
func (p *Parser) Debug(enabled bool) *Parser {
	if enabled {
		p.logger.WithLevel(argio.LevelDebug)
	} else {
		p.logger.WithLevel(argio.LevelWarning)
	}
	return p
}

// Seed fixes the hash seed used once the lookup index switches to hashed
// mode. It has no effect after the switch.
func (p *Parser) Seed(seed uint64) *Parser {
	if !p.index.hashed() {
		p.index.seed = seed
	}
	return p
}

// Program sets the program name shown in help until Parse sees args[0].
func (p *Parser) Program(name string) *Parser {
	p.program = name
	return p
}

// ProgramName returns the program name, or "program" if none is known.
func (p *Parser) ProgramName() string {
	if p.program == "" {
		return defaultProgram
	}
	return p.program
}

// Description returns the description given to New.
func (p *Parser) Description() string { return p.description }

// Arguments returns the definitions in declaration order. The slice is a
// copy; the definitions are shared.
func (p *Parser) Arguments() []*Argument {
	out := make([]*Argument, len(p.args))
	copy(out, p.args)
	return out
}

// Len returns the number of definitions, including the help flag.
func (p *Parser) Len() int { return len(p.args) }

// Lookup returns the definition registered under name.
func (p *Parser) Lookup(name string) (*Argument, bool) {
	a := p.find(name)
	return a, a != nil
}

// IsKnown reports whether name is a registered short or long name.
func (p *Parser) IsKnown(name string) bool { return p.index.isKnown(p.args, name) }

func (p *Parser) find(name string) *Argument { return p.index.find(p.args, name) }

// Errors exposes the parser's error state.
func (p *Parser) Errors() *ErrorState { return &p.errs }

// LastError returns the last recorded error, or nil.
func (p *Parser) LastError() *Error { return p.errs.Err() }

// LastErrorCode returns the errno-like code of the last error, 0 if none.
func (p *Parser) LastErrorCode() int { return p.errs.Code() }

// LastErrorMessage returns the composite message of the last error.
func (p *Parser) LastErrorMessage() string { return p.errs.Message() }

// ClearError resets the error state.
func (p *Parser) ClearError() { p.errs.Clear() }

// Destroy releases every definition, value store and the lookup index.
// The parser is empty afterwards; calling Destroy again, or on nil, is safe.
func (p *Parser) Destroy() {
	if p == nil {
		return
	}
	for _, a := range p.args {
		a.value.release()
		a.set = false
	}
	clear(p.args)
	p.args = nil
	p.help = nil
	p.index.reset()
	p.program, p.description = "", ""
	p.errs.Clear()
}
