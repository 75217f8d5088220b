package argparse

import (
	"errors"
	"strconv"
	"testing"

	goerrors "github.com/agilira/go-errors"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{newError(CategoryType, "--round", "Invalid integer value"), "[TYPE_ERROR] Argument '--round': Invalid integer value."},
		{newError(CategoryHelpRequested, "", "Help requested by user"), "[HELP_REQUESTED] Help requested by user."},
		{newError(CategoryRequired, "-n", ""), "[REQUIRED_ERROR] Argument '-n'."},
		{newError(CategoryInternal, "", ""), "[INTERNAL_ERROR]"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestCategoryProperties(t *testing.T) {
	tests := []struct {
		cat   Category
		name  string
		errno int
		fatal bool
	}{
		{CategorySuccess, "SUCCESS", 0, false},
		{CategoryMemory, "MEMORY_ERROR", CodeNoMemory, true},
		{CategorySyntax, "SYNTAX_ERROR", CodeInvalid, true},
		{CategoryType, "TYPE_ERROR", CodeInvalid, true},
		{CategoryRequired, "REQUIRED_ERROR", CodeInvalid, true},
		{CategoryValidation, "VALIDATION_ERROR", CodeInvalid, true},
		{CategoryInternal, "INTERNAL_ERROR", CodeInvalid, true},
		{CategoryConfig, "CONFIG_ERROR", CodeInvalid, true},
		{CategoryRange, "RANGE_ERROR", CodeOutOfRange, true},
		{CategoryUnknownArgument, "UNKNOWN_ARGUMENT", CodeInvalid, true},
		{CategoryDuplicateArgument, "DUPLICATE_ARGUMENT", CodeExists, true},
		{CategoryHelpRequested, "HELP_REQUESTED", 0, false},
	}
	for _, tt := range tests {
		if tt.cat.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", tt.cat, tt.cat.String(), tt.name)
		}
		if tt.cat.Errno() != tt.errno {
			t.Errorf("%s.Errno() = %d, want %d", tt.name, tt.cat.Errno(), tt.errno)
		}
		if tt.cat.Fatal() != tt.fatal {
			t.Errorf("%s.Fatal() = %v, want %v", tt.name, tt.cat.Fatal(), tt.fatal)
		}
	}
}

func TestErrorCodes(t *testing.T) {
	err := error(newError(CategoryRange, "--n", "too big"))
	coder, ok := err.(goerrors.ErrorCoder)
	if !ok {
		t.Fatalf("%T does not implement ErrorCoder", err)
	}
	if string(coder.ErrorCode()) != "ARGPARSE_RANGE_ERROR" {
		t.Errorf("ErrorCode = %s, want ARGPARSE_RANGE_ERROR", coder.ErrorCode())
	}
	if errors.Unwrap(err) == nil {
		t.Error("coded cause missing")
	}
}

func TestErrorIsMatchesCategory(t *testing.T) {
	err := error(newError(CategorySyntax, "x", "bad"))
	if !errors.Is(err, ErrSyntax) {
		t.Error("errors.Is should match the category sentinel")
	}
	if errors.Is(err, ErrType) {
		t.Error("errors.Is matched a different category")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	_, convErr := strconv.Atoi("x")
	err := wrapError(CategoryType, "", "Invalid integer value", convErr).withArgument("--round")
	if err.Argument != "--round" || err.Message != "Invalid integer value" {
		t.Errorf("withArgument lost fields: %+v", err)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("strconv cause not reachable through the chain")
	}
}

func TestErrorState(t *testing.T) {
	var s ErrorState
	if s.Occurred() || s.IsFatal() || s.Category() != CategorySuccess || s.Code() != 0 || s.Message() != "" {
		t.Fatal("zero ErrorState is not the success state")
	}
	s.Set(CategoryConfig, "-x", "bad define")
	if !s.Occurred() || !s.IsFatal() || s.Argument() != "-x" || s.Code() != CodeInvalid {
		t.Errorf("state after Set: %+v", s.Err())
	}
	if s.Message() != "[CONFIG_ERROR] Argument '-x': bad define." {
		t.Errorf("Message() = %q", s.Message())
	}
	s.Set(CategoryHelpRequested, "", "help")
	if !s.Occurred() || s.IsFatal() {
		t.Error("help is recorded but not fatal")
	}
	s.Clear()
	if s.Occurred() || s.Err() != nil {
		t.Error("Clear did not reset")
	}
}
