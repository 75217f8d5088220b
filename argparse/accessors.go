package argparse

import (
	"github.com/dzonerzy/go-argparse/internal/pool"
)

// GetBool returns the flag's value, false if the name is unknown.
func (p *Parser) GetBool(name string) bool {
	if a := p.find(name); a != nil && a.Type == ArgTypeBool {
		return a.value.b
	}
	return false
}

// GetInt returns the stored value: the parsed value, else the default,
// else 0. Unknown names and other types yield 0.
func (p *Parser) GetInt(name string) int {
	if a := p.find(name); a != nil && a.Type == ArgTypeInt {
		return a.value.i
	}
	return 0
}

// GetDouble is GetInt for double options.
func (p *Parser) GetDouble(name string) float64 {
	if a := p.find(name); a != nil && a.Type == ArgTypeDouble {
		return a.value.f
	}
	return 0
}

// GetString returns the string value and whether one is present (parsed or
// defaulted).
func (p *Parser) GetString(name string) (string, bool) {
	if a := p.find(name); a != nil && a.Type == ArgTypeString && a.value.hasString {
		return a.value.s, true
	}
	return "", false
}

// IsSet reports whether name received a value during the last parse.
func (p *Parser) IsSet(name string) bool {
	a := p.find(name)
	return a != nil && a.set
}

// GetListCount returns the number of values held by a list option, 0 for
// unknown names and scalars.
func (p *Parser) GetListCount(name string) int {
	if a := p.find(name); a != nil && a.IsList() {
		return a.value.list.len()
	}
	return 0
}

// listArg resolves a list accessor's target, recording why it cannot.
func (p *Parser) listArg(name string, want ArgType) *Argument {
	p.errs.Clear()
	a := p.find(name)
	if a == nil {
		p.errs.Set(CategoryUnknownArgument, name, "Argument not defined")
		return nil
	}
	if a.Type != want {
		p.errs.Set(CategoryType, name, "Argument is not a "+want.String())
		return nil
	}
	return a
}

// GetIntList returns a caller-owned copy of an int list, nil if empty or
// not an int list. Hand the copy back with ReleaseIntList when done.
func (p *Parser) GetIntList(name string) []int {
	a := p.listArg(name, ArgTypeIntList)
	if a == nil || a.value.list.len() == 0 {
		return nil
	}
	out := pool.Ints.Get(a.value.list.len())
	for _, e := range a.value.list.elems {
		out = append(out, e.i)
	}
	return out
}

// GetDoubleList is GetIntList for double lists.
func (p *Parser) GetDoubleList(name string) []float64 {
	a := p.listArg(name, ArgTypeDoubleList)
	if a == nil || a.value.list.len() == 0 {
		return nil
	}
	out := pool.Floats.Get(a.value.list.len())
	for _, e := range a.value.list.elems {
		out = append(out, e.f)
	}
	return out
}

// GetStringList is GetIntList for string lists.
func (p *Parser) GetStringList(name string) []string {
	a := p.listArg(name, ArgTypeStringList)
	if a == nil || a.value.list.len() == 0 {
		return nil
	}
	out := pool.Strings.Get(a.value.list.len())
	for _, e := range a.value.list.elems {
		out = append(out, e.s)
	}
	return out
}

// ReleaseIntList recycles a copy from GetIntList and sets *values to nil,
// so releasing twice is harmless.
func ReleaseIntList(values *[]int) {
	if values == nil || *values == nil {
		return
	}
	pool.Ints.Put(*values)
	*values = nil
}

// ReleaseDoubleList recycles a copy from GetDoubleList.
func ReleaseDoubleList(values *[]float64) {
	if values == nil || *values == nil {
		return
	}
	pool.Floats.Put(*values)
	*values = nil
}

// ReleaseStringList drops the first count strings of a copy from
// GetStringList and recycles it. count is clamped to the slice length.
func ReleaseStringList(values *[]string, count int) {
	if values == nil || *values == nil {
		return
	}
	s := *values
	clear(s[:min(max(count, 0), len(s))])
	pool.Strings.Put(s)
	*values = nil
}

func (a *Argument) intValues() []int {
	out := make([]int, a.value.list.len())
	for i, e := range a.value.list.elems {
		out[i] = e.i
	}
	return out
}

func (a *Argument) doubleValues() []float64 {
	out := make([]float64, a.value.list.len())
	for i, e := range a.value.list.elems {
		out[i] = e.f
	}
	return out
}

func (a *Argument) stringValues() []string {
	out := make([]string, a.value.list.len())
	for i, e := range a.value.list.elems {
		out[i] = e.s
	}
	return out
}
