package collections

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/hasbyte1/go-underscore-utils/arr"
)

// Kind tells which shape a Collection holds.
type Kind uint8

const (
	// Sequence is an ordered, index-addressed collection backed by a slice.
	Sequence Kind = iota
	// Mapping is a string-keyed collection backed by a map.
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Collection holds either an ordered sequence of V or a string-keyed mapping
// of V, and iterates over both the same way.
//
// Sequences are visited in index order. Mappings are visited in ascending key
// order, so iteration over a Collection is always deterministic.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3)
//	c := collections.FromSlice([]string{"a", "b"})
//	c := collections.FromMap(map[string]int{"x": 1, "y": 2})
//
// Constructors copy their input; a Collection never aliases caller memory.
type Collection[V any] struct {
	kind    Kind
	items   []V
	entries map[string]V
	keys    []string
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a sequence Collection from a variadic list of items (copied).
func New[V any](items ...V) *Collection[V] {
	return FromSlice(items)
}

// FromSlice creates a sequence Collection (the slice is copied).
func FromSlice[V any](items []V) *Collection[V] {
	dst := make([]V, len(items))
	copy(dst, items)
	return &Collection[V]{kind: Sequence, items: dst}
}

// FromMap creates a mapping Collection (the map is copied).
func FromMap[V any](entries map[string]V) *Collection[V] {
	dst := make(map[string]V, len(entries))
	maps.Copy(dst, entries)
	return &Collection[V]{
		kind:    Mapping,
		entries: dst,
		keys:    slices.Sorted(maps.Keys(dst)),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Kind returns the shape of the collection.
func (c *Collection[V]) Kind() Kind { return c.kind }

// IsSequence reports whether c is backed by a slice.
func (c *Collection[V]) IsSequence() bool { return c.kind == Sequence }

// Len returns the number of elements or entries.
func (c *Collection[V]) Len() int {
	if c.kind == Mapping {
		return len(c.entries)
	}
	return len(c.items)
}

// Keys returns every key in iteration order.
func (c *Collection[V]) Keys() []Key {
	out := make([]Key, 0, c.Len())
	c.Each(func(_ V, k Key, _ *Collection[V]) { out = append(out, k) })
	return out
}

// Values returns every value in iteration order as a new slice.
func (c *Collection[V]) Values() []V {
	out := make([]V, 0, c.Len())
	c.Each(func(v V, _ Key, _ *Collection[V]) { out = append(out, v) })
	return out
}

// Get returns the value stored under k. Index keys only resolve against
// sequences and name keys only against mappings.
func (c *Collection[V]) Get(k Key) (V, bool) {
	var zero V
	if i, ok := k.Index(); ok && c.kind == Sequence {
		if i < 0 || i >= len(c.items) {
			return zero, false
		}
		return c.items[i], true
	}
	if name, ok := k.Name(); ok && c.kind == Mapping {
		v, found := c.entries[name]
		return v, found
	}
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & predicates
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) for every element of a sequence, or for every
// entry of a mapping.
func (c *Collection[V]) Each(fn func(V, Key, *Collection[V])) {
	if c.kind == Mapping {
		for _, name := range c.keys {
			fn(c.entries[name], NameKey(name), c)
		}
		return
	}
	for i, v := range c.items {
		fn(v, IndexKey(i), c)
	}
}

// Every reports whether fn holds for every value. A nil fn accepts
// everything.
func (c *Collection[V]) Every(fn func(V) bool) bool {
	return arr.Every(c.Values(), fn)
}

// Some reports whether fn holds for at least one value. A nil fn defaults to
// [arr.Truthy].
func (c *Collection[V]) Some(fn func(V) bool) bool {
	return arr.Some(c.Values(), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes a sequence as a JSON array and a mapping as a JSON
// object.
func (c *Collection[V]) MarshalJSON() ([]byte, error) {
	if c.kind == Mapping {
		return json.Marshal(c.entries)
	}
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[V]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		if c.kind == Mapping {
			return fmt.Sprintf("%v", c.entries)
		}
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}
