// Package arr provides standalone generic helpers for Go slices and
// string-keyed maps, modelled on the collection helpers of underscore.js.
//
// # Slice helpers
//
// All slice helpers operate on plain []T values, no wrapper type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	uniq  := arr.Uniq([]int{3, 1, 3, 2})            // → [1 2 3]
//	both  := arr.Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
//
// Helpers return new slices and never modify their inputs. The exceptions are
// [Extend] and [Defaults], whose job is to fill in the target map.
//
// # Absent values
//
// Positions that may be empty ([Zip], [Pluck], [SortBy] keys) use [Option],
// which keeps "no value" apart from zero values such as 0, "" or false.
//
// # Dot-notation map access
//
// [Lookup], [Get] and [Has] read nested map[string]any values with dotted
// paths; [PluckPath] and [SortByKey] accept the same paths:
//
//	arr.Get(m, "user.address.city") // → "London"
package arr
