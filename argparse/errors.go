package argparse

import (
	"errors"
	"strings"

	goerrors "github.com/agilira/go-errors"
)

// Category classifies the outcome of a parser operation.
// Every category except CategorySuccess and CategoryHelpRequested is fatal.
type Category int

const (
	CategorySuccess Category = iota
	CategoryMemory
	CategorySyntax
	CategoryType
	CategoryRequired
	CategoryValidation
	CategoryInternal
	CategoryConfig
	CategoryRange
	CategoryUnknownArgument
	CategoryDuplicateArgument
	CategoryHelpRequested
)

// String returns the upper-case name used in composite error messages.
func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "SUCCESS"
	case CategoryMemory:
		return "MEMORY_ERROR"
	case CategorySyntax:
		return "SYNTAX_ERROR"
	case CategoryType:
		return "TYPE_ERROR"
	case CategoryRequired:
		return "REQUIRED_ERROR"
	case CategoryValidation:
		return "VALIDATION_ERROR"
	case CategoryInternal:
		return "INTERNAL_ERROR"
	case CategoryConfig:
		return "CONFIG_ERROR"
	case CategoryRange:
		return "RANGE_ERROR"
	case CategoryUnknownArgument:
		return "UNKNOWN_ARGUMENT"
	case CategoryDuplicateArgument:
		return "DUPLICATE_ARGUMENT"
	case CategoryHelpRequested:
		return "HELP_REQUESTED"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Fatal reports whether the category should stop further processing.
func (c Category) Fatal() bool {
	return c != CategorySuccess && c != CategoryHelpRequested
}

// Errno-like codes carried by each category.
const (
	CodeOK         = 0
	CodeNoMemory   = 12 // ENOMEM
	CodeExists     = 17 // EEXIST
	CodeInvalid    = 22 // EINVAL
	CodeOutOfRange = 34 // ERANGE
)

// Errno returns the errno-like numeric code associated with the category.
func (c Category) Errno() int {
	switch c {
	case CategorySuccess, CategoryHelpRequested:
		return CodeOK
	case CategoryMemory:
		return CodeNoMemory
	case CategoryRange:
		return CodeOutOfRange
	case CategoryDuplicateArgument:
		return CodeExists
	default:
		return CodeInvalid
	}
}

// Error codes attached to the coded cause of every *Error.
const (
	ErrCodeMemory            goerrors.ErrorCode = "ARGPARSE_MEMORY_ERROR"
	ErrCodeSyntax            goerrors.ErrorCode = "ARGPARSE_SYNTAX_ERROR"
	ErrCodeType              goerrors.ErrorCode = "ARGPARSE_TYPE_ERROR"
	ErrCodeRequired          goerrors.ErrorCode = "ARGPARSE_REQUIRED_ERROR"
	ErrCodeValidation        goerrors.ErrorCode = "ARGPARSE_VALIDATION_ERROR"
	ErrCodeInternal          goerrors.ErrorCode = "ARGPARSE_INTERNAL_ERROR"
	ErrCodeConfig            goerrors.ErrorCode = "ARGPARSE_CONFIG_ERROR"
	ErrCodeRange             goerrors.ErrorCode = "ARGPARSE_RANGE_ERROR"
	ErrCodeUnknownArgument   goerrors.ErrorCode = "ARGPARSE_UNKNOWN_ARGUMENT"
	ErrCodeDuplicateArgument goerrors.ErrorCode = "ARGPARSE_DUPLICATE_ARGUMENT"
	ErrCodeHelpRequested     goerrors.ErrorCode = "ARGPARSE_HELP_REQUESTED"
)

// ErrorCode returns the go-errors code for the category.
func (c Category) ErrorCode() goerrors.ErrorCode {
	switch c {
	case CategoryMemory:
		return ErrCodeMemory
	case CategorySyntax:
		return ErrCodeSyntax
	case CategoryType:
		return ErrCodeType
	case CategoryRequired:
		return ErrCodeRequired
	case CategoryValidation:
		return ErrCodeValidation
	case CategoryConfig:
		return ErrCodeConfig
	case CategoryRange:
		return ErrCodeRange
	case CategoryUnknownArgument:
		return ErrCodeUnknownArgument
	case CategoryDuplicateArgument:
		return ErrCodeDuplicateArgument
	case CategoryHelpRequested:
		return ErrCodeHelpRequested
	default:
		return ErrCodeInternal
	}
}

// Error is returned by every fallible parser operation.
type Error struct {
	Category   Category
	Argument   string // offending argument name, may be empty
	Message    string // human message without trailing period
	Suggestion string // closest registered name for unknown options

	cause error
}

// Sentinels for errors.Is; matching is by category only.
var (
	ErrHelpRequested = &Error{Category: CategoryHelpRequested}
	ErrSyntax        = &Error{Category: CategorySyntax}
	ErrType          = &Error{Category: CategoryType}
	ErrRange         = &Error{Category: CategoryRange}
	ErrRequired      = &Error{Category: CategoryRequired}
	ErrConfig        = &Error{Category: CategoryConfig}
	ErrDuplicate     = &Error{Category: CategoryDuplicateArgument}
	ErrValidation    = &Error{Category: CategoryValidation}
)

func newError(cat Category, argument, message string) *Error {
	return &Error{Category: cat, Argument: argument, Message: message, cause: coded(cat, argument, message, nil)}
}

// wrapError records err as the underlying reason, keeping the category code.
func wrapError(cat Category, argument, message string, err error) *Error {
	return &Error{Category: cat, Argument: argument, Message: message, cause: coded(cat, argument, message, err)}
}

func coded(cat Category, argument, message string, cause error) error {
	switch {
	case cause != nil && argument != "":
		return goerrors.Wrap(cause, cat.ErrorCode(), message).WithContext("argument", argument)
	case cause != nil:
		return goerrors.Wrap(cause, cat.ErrorCode(), message)
	case argument != "":
		return goerrors.New(cat.ErrorCode(), message).WithContext("argument", argument)
	default:
		return goerrors.New(cat.ErrorCode(), message)
	}
}

// withArgument returns a copy of e naming argument as the offender.
func (e *Error) withArgument(argument string) *Error {
	return &Error{
		Category:   e.Category,
		Argument:   argument,
		Message:    e.Message,
		Suggestion: e.Suggestion,
		cause:      coded(e.Category, argument, e.Message, errors.Unwrap(e.cause)),
	}
}

// Error formats the composite message, e.g. "[TYPE_ERROR] Argument '--round': Invalid integer value."
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(e.Category.String())
	b.WriteByte(']')
	switch {
	case e.Argument != "" && e.Message != "":
		b.WriteString(" Argument '")
		b.WriteString(e.Argument)
		b.WriteString("': ")
		b.WriteString(e.Message)
		b.WriteByte('.')
	case e.Argument != "":
		b.WriteString(" Argument '")
		b.WriteString(e.Argument)
		b.WriteString("'.")
	case e.Message != "":
		b.WriteByte(' ')
		b.WriteString(e.Message)
		b.WriteByte('.')
	}
	return b.String()
}

// Unwrap exposes the coded cause (an *errors.Error from agilira/go-errors).
func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error of the same category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Category == e.Category
}

// Fatal reports whether the error should stop further processing.
func (e *Error) Fatal() bool { return e.Category.Fatal() }

// Errno returns the errno-like code of the error's category.
func (e *Error) Errno() int { return e.Category.Errno() }

// ErrorCode satisfies goerrors.ErrorCoder.
func (e *Error) ErrorCode() goerrors.ErrorCode { return e.Category.ErrorCode() }

// ErrorState holds the last error recorded by a Parser. It is cleared at
// the start of each fallible public operation and persists until the
// next one or an explicit Clear.
type ErrorState struct {
	last *Error
}

// Set overwrites the state with a new error and returns it.
func (s *ErrorState) Set(cat Category, argument, message string) *Error {
	s.last = newError(cat, argument, message)
	return s.last
}

func (s *ErrorState) record(err *Error) *Error {
	s.last = err
	return err
}

// Clear resets the state to success.
func (s *ErrorState) Clear() { s.last = nil }

// Occurred reports whether any error, including HelpRequested, is recorded.
func (s *ErrorState) Occurred() bool { return s.last != nil && s.last.Category != CategorySuccess }

// IsFatal reports whether the recorded error is fatal.
func (s *ErrorState) IsFatal() bool { return s.last != nil && s.last.Fatal() }

// Category returns the recorded category, CategorySuccess if none.
func (s *ErrorState) Category() Category {
	if s.last == nil {
		return CategorySuccess
	}
	return s.last.Category
}

// Code returns the errno-like code of the recorded error.
func (s *ErrorState) Code() int { return s.Category().Errno() }

// Message returns the composite message, or "" when nothing is recorded.
func (s *ErrorState) Message() string {
	if s.last == nil {
		return ""
	}
	return s.last.Error()
}

// Argument returns the offending argument name of the recorded error.
func (s *ErrorState) Argument() string {
	if s.last == nil {
		return ""
	}
	return s.last.Argument
}

// Err returns the recorded error or nil.
func (s *ErrorState) Err() *Error { return s.last }
