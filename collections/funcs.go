package collections

import "github.com/hasbyte1/go-underscore-utils/arr"

// This file contains package-level generic functions over Collection[V].
//
// Go methods cannot add type parameters or tighten V to comparable, so these
// operations are stand-alone functions:
//
//	ok := collections.Contains(collections.FromMap(ports), 443)

// Contains reports whether any value of c equals target.
func Contains[V comparable](c *Collection[V], target V) bool {
	return arr.Contains(c.Values(), target)
}

// Map applies fn to every value and returns a Collection of the same shape:
// a sequence stays a sequence and a mapping keeps its keys.
//
//	lengths := collections.Map(collections.FromMap(names),
//	    func(s string, _ collections.Key) int { return len(s) })
func Map[V, U any](c *Collection[V], fn func(V, Key) U) *Collection[U] {
	if c.kind == Mapping {
		out := make(map[string]U, len(c.entries))
		c.Each(func(v V, k Key, _ *Collection[V]) { out[k.name] = fn(v, k) })
		return &Collection[U]{kind: Mapping, entries: out, keys: c.keys}
	}
	out := make([]U, len(c.items))
	for i, v := range c.items {
		out[i] = fn(v, IndexKey(i))
	}
	return &Collection[U]{kind: Sequence, items: out}
}
