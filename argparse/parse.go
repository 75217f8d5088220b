package argparse

import (
	"errors"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
)

// helpSpellings always request help, whatever the help option is named.
var helpSpellings = [...]string{"-h", "-H", "--help", "--HELP", "/?", "/help", "/HELP"}

const (
	msgRequiresValue   = "Option requires a value"
	msgMissingValue    = "Option requires a value but none provided"
	msgUnexpected      = "Unexpected value (did you forget an option?)"
	msgListNeedsValues = "List argument requires values"
	msgRequired        = "Required argument not provided"
	msgNoArguments     = "No arguments provided, showing help"
	msgHelpRequested   = "Help requested by user"
	msgEmptyVector     = "Argument vector must contain the program name"
)

// suggestDistance is the edit distance allowed for "did you mean" hints.
const suggestDistance = 2

// isHelpToken matches the fixed help spellings case-sensitively.
func isHelpToken(tok string) bool {
	for _, h := range helpSpellings {
		if tok == h {
			return true
		}
	}
	return false
}

// Parse consumes args, where args[0] is the program name, assigning values
// to the defined options. It stops at the first problem and returns it as
// an *Error, also recorded in the error state. A help request renders help
// and returns an error matching ErrHelpRequested, which is not fatal; in
// that case required options are not checked.
//
//nolint:gocognit // single pass state machine over the token vector
func (p *Parser) Parse(args []string) error {
	p.errs.Clear()
	if len(args) == 0 {
		return p.fail(newError(CategoryInternal, "", msgEmptyVector))
	}
	if args[0] != "" {
		p.program = args[0]
	}
	if len(args) == 1 {
		p.PrintHelp()
		return p.fail(newError(CategoryHelpRequested, "", msgNoArguments))
	}

	for i := 1; i < len(args); {
		tok := args[i]

		if a, inline, ok := p.matchJoined(tok); ok {
			p.logger.Debug("token %d %q: joined value for %s", i, tok, a.label())
			if err := p.assignJoined(a, inline); err != nil {
				return p.fail(err)
			}
			i++
			continue
		}

		if isHelpToken(tok) {
			p.logger.Debug("token %d %q: help requested", i, tok)
			p.PrintHelp()
			return p.fail(newError(CategoryHelpRequested, "", msgHelpRequested))
		}

		a := p.find(tok)
		if a == nil {
			return p.fail(p.unexpected(tok))
		}

		switch {
		case a.Type == ArgTypeBool:
			p.logger.Debug("token %d %q: flag", i, tok)
			a.value.setBool(true)
			a.set = true
			i++

		case a.IsList():
			n, err := p.consumeList(a, args[i+1:])
			if err != nil {
				return p.fail(err)
			}
			p.logger.Debug("token %d %q: list with %d value tokens", i, tok, n)
			i += 1 + n

		default:
			if i+1 >= len(args) {
				return p.fail(newError(CategorySyntax, a.primaryName(), msgMissingValue))
			}
			next := args[i+1]
			if p.IsKnown(next) {
				return p.fail(newError(CategorySyntax, a.primaryName(), msgRequiresValue))
			}
			if err := p.assignScalar(a, next); err != nil {
				return p.fail(err)
			}
			p.logger.Debug("token %d %q: scalar value %q", i, tok, next)
			i += 2
		}
	}

	for _, a := range p.args {
		if a.Required && !a.set {
			return p.fail(newError(CategoryRequired, a.primaryName(), msgRequired))
		}
	}
	for _, a := range p.args {
		if err := a.validate(); err != nil {
			return p.fail(err)
		}
	}
	return nil
}

func (p *Parser) fail(err *Error) error {
	p.errs.record(err)
	return err
}

// matchJoined finds the earliest-declared definition with a suffix whose
// name, ignoring leading non-alphanumerics, prefixes tok up to the suffix.
func (p *Parser) matchJoined(tok string) (*Argument, string, bool) {
	for _, a := range p.args {
		if a.Suffix == 0 {
			continue
		}
		pos := strings.IndexByte(tok, a.Suffix)
		if pos <= 0 {
			continue
		}
		start := leadLen(tok)
		if start >= pos {
			continue
		}
		name := tok[start:pos]
		if (a.Short != "" && name == stripLead(a.Short)) || (a.Long != "" && name == stripLead(a.Long)) {
			return a, tok[pos+1:], true
		}
	}
	return nil, "", false
}

func leadLen(s string) int {
	i := 0
	for i < len(s) && !isAlnum(s[i]) {
		i++
	}
	return i
}

func stripLead(s string) string { return s[leadLen(s):] }

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func (p *Parser) assignJoined(a *Argument, inline string) *Error {
	switch {
	case a.Type == ArgTypeBool:
		b, err := ParseBoolWord(inline)
		if err != nil {
			return asError(err).withArgument(a.label())
		}
		a.value.setBool(b)
		a.set = true
		return nil
	case a.IsList():
		q, err := splitList(a.Type.Elem(), inline, a.Delimiter)
		if err != nil {
			return asError(err).withArgument(a.label())
		}
		a.value.appendAll(q)
		a.set = true
		return nil
	default:
		return p.assignScalar(a, inline)
	}
}

func (p *Parser) assignScalar(a *Argument, tok string) *Error {
	switch a.Type {
	case ArgTypeInt:
		n, err := ParseInt(tok)
		if err != nil {
			return asError(err).withArgument(a.label())
		}
		a.value.setInt(n)
	case ArgTypeDouble:
		f, err := ParseDouble(tok)
		if err != nil {
			return asError(err).withArgument(a.label())
		}
		a.value.setDouble(f)
	case ArgTypeString:
		a.value.setString(tok)
	case ArgTypeBool:
		b, err := ParseBoolWord(tok)
		if err != nil {
			return asError(err).withArgument(a.label())
		}
		a.value.setBool(b)
	default:
		return newError(CategoryInternal, a.label(), "Unexpected scalar type")
	}
	a.set = true
	return nil
}

// consumeList takes value tokens for a until the next registered name or
// the end of rest. Values are staged and appended only if every token
// converts.
func (p *Parser) consumeList(a *Argument, rest []string) (int, *Error) {
	kind := a.Type.Elem()
	staged := sequence{kind: kind}
	n := 0
	for _, tok := range rest {
		if p.IsKnown(tok) {
			break
		}
		if a.Delimiter != DelimiterSeparate && strings.IndexByte(tok, a.Delimiter) >= 0 {
			q, err := splitList(kind, tok, a.Delimiter)
			if err != nil {
				return 0, asError(err).withArgument(a.label())
			}
			staged.append(q.elems...)
		} else {
			e, err := parseElement(kind, tok)
			if err != nil {
				return 0, listElementError(err).withArgument(a.label())
			}
			staged.append(e)
		}
		n++
	}
	if n == 0 {
		return 0, newError(CategorySyntax, a.primaryName(), msgListNeedsValues)
	}
	a.value.appendAll(staged)
	a.set = true
	return n, nil
}

func listElementError(err error) *Error {
	e := asError(err)
	if e.Category == CategoryRange {
		return e
	}
	return wrapError(CategoryType, "", msgInvalidList, err)
}

// unexpected builds the error for an unregistered token, adding the
// closest registered name when the token looks like an option.
func (p *Parser) unexpected(tok string) *Error {
	err := newError(CategorySyntax, tok, msgUnexpected)
	if strings.HasPrefix(tok, "-") || strings.HasPrefix(tok, "/") {
		names := make([]string, 0, 2*len(p.args))
		for _, a := range p.args {
			if a.Short != "" {
				names = append(names, a.Short)
			}
			if a.Long != "" {
				names = append(names, a.Long)
			}
		}
		err.Suggestion = fuzzy.FindBestOption(tok, names, suggestDistance)
	}
	return err
}

func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return wrapError(CategoryInternal, "", err.Error(), err)
}
