package argparse

import (
	"fmt"
	"slices"
	"strings"
)

// Validate attaches a check run after a successful parse on the named
// option, if it was set. fn must match the option's type:
//
//	int        func(int) error
//	double     func(float64) error
//	string     func(string) error
//	bool       func(bool) error
//	int list   func([]int) error
//	double list func([]float64) error
//	string list func([]string) error
//
// A failing check makes Parse return a ValidationError naming the option.
func (p *Parser) Validate(name string, fn any) error {
	p.errs.Clear()
	a := p.find(name)
	if a == nil {
		return p.errs.Set(CategoryUnknownArgument, name, "Argument not defined")
	}
	ok := false
	switch fn.(type) {
	case func(int) error:
		ok = a.Type == ArgTypeInt
	case func(float64) error:
		ok = a.Type == ArgTypeDouble
	case func(string) error:
		ok = a.Type == ArgTypeString
	case func(bool) error:
		ok = a.Type == ArgTypeBool
	case func([]int) error:
		ok = a.Type == ArgTypeIntList
	case func([]float64) error:
		ok = a.Type == ArgTypeDoubleList
	case func([]string) error:
		ok = a.Type == ArgTypeStringList
	}
	if !ok {
		return p.errs.Set(CategoryConfig, name, fmt.Sprintf("Validator %T does not fit a %s argument", fn, a.Type))
	}
	a.validator = fn
	return nil
}

func (a *Argument) validate() *Error {
	if a.validator == nil || !a.set {
		return nil
	}
	var err error
	switch fn := a.validator.(type) {
	case func(int) error:
		err = fn(a.value.i)
	case func(float64) error:
		err = fn(a.value.f)
	case func(string) error:
		err = fn(a.value.s)
	case func(bool) error:
		err = fn(a.value.b)
	case func([]int) error:
		err = fn(a.intValues())
	case func([]float64) error:
		err = fn(a.doubleValues())
	case func([]string) error:
		err = fn(a.stringValues())
	}
	if err != nil {
		return wrapError(CategoryValidation, a.label(), err.Error(), err)
	}
	return nil
}

// IntRange accepts min <= v <= max.
func IntRange(min, max int) func(int) error {
	return func(v int) error {
		if v < min || v > max {
			return fmt.Errorf("value %d is not within range [%d, %d]", v, min, max)
		}
		return nil
	}
}

// DoubleRange accepts min <= v <= max.
func DoubleRange(min, max float64) func(float64) error {
	return func(v float64) error {
		if v < min || v > max {
			return fmt.Errorf("value %g is not within range [%g, %g]", v, min, max)
		}
		return nil
	}
}

// OneOf accepts only the listed strings.
func OneOf(values ...string) func(string) error {
	return func(v string) error {
		if slices.Contains(values, v) {
			return nil
		}
		return fmt.Errorf("value %q is not one of [%s]", v, strings.Join(values, ", "))
	}
}

// MinItems requires a list to hold at least n values.
func MinItems[T any](n int) func([]T) error {
	return func(v []T) error {
		if len(v) < n {
			return fmt.Errorf("expected at least %d values, got %d", n, len(v))
		}
		return nil
	}
}
