// Package collections provides [Collection], a value that is either an
// ordered sequence or a string-keyed mapping, so that iteration and search
// helpers accept both shapes the way underscore.js accepts arrays and
// objects.
//
// # Overview
//
//	seq := collections.New(3, 0, 7)
//	obj := collections.FromMap(map[string]int{"b": 2, "a": 1})
//
//	obj.Each(func(v int, k collections.Key, _ *collections.Collection[int]) {
//	    fmt.Println(k, v) // a 1, then b 2
//	})
//
//	seq.Every(func(n int) bool { return n >= 0 }) // true
//	seq.Some(nil)                                 // true: 3 is truthy
//	collections.Contains(obj, 2)                  // true
//
// The shape is fixed at construction time and reported by
// [Collection.IsSequence]. Callbacks receive a [Key]: an index for sequences
// and a name for mappings.
//
// # Ordering
//
// Mapping entries are visited in ascending key order.
//
// # Plain slices
//
// For positional work on plain []T values (map, filter, reduce, zip, …) use
// package arr directly; Collection only covers the operations that must treat
// both shapes alike.
package collections
