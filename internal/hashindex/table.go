// Package hashindex implements the seeded, chained hash table behind the
// parser's name lookup once enough arguments are defined.
package hashindex

import (
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultCapacity is the initial bucket count. Always a power of two.
	DefaultCapacity = 256
	// MaxLoadFactor triggers a doubling rehash when exceeded after an insert.
	MaxLoadFactor = 0.75
	// DefaultMaxCapacity bounds growth.
	DefaultMaxCapacity = 1 << 30
)

// ErrCapacity is returned when a table would have to grow past its limit.
var ErrCapacity = errors.New("hashindex: capacity limit exceeded")

type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Table maps string keys to values with chaining. It is not safe for
// concurrent use: lookups reuse one hash digest.
type Table[V any] struct {
	buckets     []*entry[V]
	size        int
	seed        uint64
	maxCapacity int
	digest      *xxhash.Digest
}

// New creates a table with at least capacity buckets, rounded up to a
// power of two. The seed is fixed for the table's lifetime.
func New[V any](capacity int, seed uint64) *Table[V] {
	return NewLimited[V](capacity, seed, DefaultMaxCapacity)
}

// NewLimited is New with an explicit growth limit.
func NewLimited[V any](capacity int, seed uint64, maxCapacity int) *Table[V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if maxCapacity < 1 {
		maxCapacity = DefaultMaxCapacity
	}
	return &Table[V]{
		buckets:     make([]*entry[V], roundPow2(capacity)),
		seed:        seed,
		maxCapacity: maxCapacity,
		digest:      xxhash.NewWithSeed(seed),
	}
}

func roundPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (t *Table[V]) hash(key string) uint64 {
	t.digest.ResetWithSeed(t.seed)
	_, _ = t.digest.WriteString(key)
	return t.digest.Sum64()
}

func (t *Table[V]) bucket(key string) int {
	return int(t.hash(key) & uint64(len(t.buckets)-1))
}

// Insert adds or replaces key. When the load factor is exceeded the table
// doubles; if that would pass the growth limit the entry is still stored
// and ErrCapacity is returned.
func (t *Table[V]) Insert(key string, value V) error {
	idx := t.bucket(key)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return nil
		}
	}
	t.buckets[idx] = &entry[V]{key: key, value: value, next: t.buckets[idx]}
	t.size++
	if float64(t.size)/float64(len(t.buckets)) > MaxLoadFactor {
		return t.resize(len(t.buckets) * 2)
	}
	return nil
}

func (t *Table[V]) resize(capacity int) error {
	if capacity > t.maxCapacity {
		return ErrCapacity
	}
	old := t.buckets
	t.buckets = make([]*entry[V], capacity)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := t.bucket(e.key)
			e.next = t.buckets[idx]
			t.buckets[idx] = e
			e = next
		}
	}
	return nil
}

// Lookup returns the value stored under key.
func (t *Table[V]) Lookup(key string) (V, bool) {
	for e := t.buckets[t.bucket(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Len returns the number of stored keys.
func (t *Table[V]) Len() int { return t.size }

// Capacity returns the current bucket count.
func (t *Table[V]) Capacity() int { return len(t.buckets) }

// Seed returns the hash seed chosen at creation.
func (t *Table[V]) Seed() uint64 { return t.seed }

// Clear drops every entry and keeps the current capacity.
func (t *Table[V]) Clear() {
	clear(t.buckets)
	t.size = 0
}
