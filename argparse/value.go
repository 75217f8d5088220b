package argparse

import (
	"fmt"
	"math"
)

// element is one list entry; the sequence kind says which field is live.
type element struct {
	i int
	f float64
	s string
}

// sequence is the growable storage behind every list argument.
type sequence struct {
	kind  ArgType // element kind: ArgTypeInt, ArgTypeDouble or ArgTypeString
	elems []element
}

func (q *sequence) append(elems ...element) { q.elems = append(q.elems, elems...) }

func (q *sequence) len() int { return len(q.elems) }

// reset releases every element, leaving a valid empty sequence.
func (q *sequence) reset() {
	clear(q.elems)
	q.elems = q.elems[:0]
}

// valueStore owns one argument's value. Scalars are always present with a
// zero default except strings, which may be absent. Lists always have a
// non-nil sequence.
type valueStore struct {
	kind ArgType

	i         int
	f         float64
	b         bool
	s         string
	hasString bool

	list *sequence
}

func newValueStore(t ArgType) valueStore {
	v := valueStore{kind: t}
	if t.IsList() {
		v.list = &sequence{kind: t.Elem()}
	}
	return v
}

// setDefault copies a user-supplied default into a scalar store.
func (v *valueStore) setDefault(def any) error {
	if def == nil {
		return nil
	}
	if v.kind.IsList() {
		return fmt.Errorf("list arguments take no default, got %T", def)
	}
	switch v.kind {
	case ArgTypeInt:
		var n int64
		switch d := def.(type) {
		case int:
			n = int64(d)
		case int32:
			n = int64(d)
		case int64:
			n = d
		default:
			return fmt.Errorf("default for %s must be an integer, got %T", v.kind, def)
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return fmt.Errorf("default %d outside 32-bit range", n)
		}
		v.i = int(n)
	case ArgTypeDouble:
		switch d := def.(type) {
		case float64:
			v.f = d
		case float32:
			v.f = float64(d)
		case int:
			v.f = float64(d)
		default:
			return fmt.Errorf("default for %s must be a float, got %T", v.kind, def)
		}
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return fmt.Errorf("default must be finite")
		}
	case ArgTypeBool:
		d, ok := def.(bool)
		if !ok {
			return fmt.Errorf("default for %s must be a bool, got %T", v.kind, def)
		}
		v.b = d
	case ArgTypeString:
		d, ok := def.(string)
		if !ok {
			return fmt.Errorf("default for %s must be a string, got %T", v.kind, def)
		}
		v.s, v.hasString = d, true
	}
	return nil
}

func (v *valueStore) setInt(n int)         { v.i = n }
func (v *valueStore) setDouble(f float64)  { v.f = f }
func (v *valueStore) setBool(b bool)       { v.b = b }
func (v *valueStore) setString(s string)   { v.s, v.hasString = s, true }
func (v *valueStore) appendAll(q sequence) { v.list.append(q.elems...) }

// release drops the stored value. A list keeps its empty sequence.
func (v *valueStore) release() {
	v.i, v.f, v.b = 0, 0, false
	v.s, v.hasString = "", false
	if v.list != nil {
		v.list.reset()
	}
}
