package argparse

import (
	"github.com/dzonerzy/go-argparse/internal/hashindex"
)

// HashThreshold is the definition count at which lookups switch from a
// linear scan to the hash table.
const HashThreshold = 16

// lookupIndex accelerates name lookups over the registry. The registry stays
// authoritative: a nil table means linear mode, and any table failure drops
// back to it.
type lookupIndex struct {
	table       *hashindex.Table[*Argument]
	seed        uint64
	capacity    int
	maxCapacity int
	degraded    bool
}

func (x *lookupIndex) hashed() bool { return x.table != nil }

// find returns the definition registered under name, or nil.
func (x *lookupIndex) find(args []*Argument, name string) *Argument {
	if name == "" {
		return nil
	}
	if x.table != nil {
		a, _ := x.table.Lookup(name)
		return a
	}
	return findLinear(args, name)
}

func findLinear(args []*Argument, name string) *Argument {
	for _, a := range args {
		if a.matches(name) {
			return a
		}
	}
	return nil
}

func (x *lookupIndex) isKnown(args []*Argument, name string) bool {
	return x.find(args, name) != nil
}

// maintain is called after each append to the registry. It reports whether
// this call promoted the index to hashed mode. A non-nil error means the
// table could not hold the keys and lookups are linear again.
func (x *lookupIndex) maintain(args []*Argument, added *Argument) (promoted bool, err error) {
	if x.table != nil {
		if err := insertKeys(x.table, added); err != nil {
			x.table, x.degraded = nil, true
			return false, err
		}
		return false, nil
	}
	if x.degraded || len(args) < HashThreshold {
		return false, nil
	}
	table := hashindex.NewLimited[*Argument](x.capacity, x.seed, x.maxCapacity)
	for _, a := range args {
		if err := insertKeys(table, a); err != nil {
			x.degraded = true
			return false, err
		}
	}
	x.table = table
	return true, nil
}

func insertKeys(t *hashindex.Table[*Argument], a *Argument) error {
	if a.Short != "" {
		if err := t.Insert(a.Short, a); err != nil {
			return err
		}
	}
	if a.Long != "" {
		if err := t.Insert(a.Long, a); err != nil {
			return err
		}
	}
	return nil
}

// tableCapacity returns the bucket count, 0 in linear mode.
func (x *lookupIndex) tableCapacity() int {
	if x.table == nil {
		return 0
	}
	return x.table.Capacity()
}

func (x *lookupIndex) reset() {
	if x.table != nil {
		x.table.Clear()
	}
	x.table = nil
	x.degraded = false
}
