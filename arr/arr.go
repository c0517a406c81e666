package arr

import (
	"cmp"
	"math"
	"reflect"
	"slices"

	"github.com/ghetzel/go-stockutil/typeutil"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a new slice holding the first n elements.
// n is clamped to [0, len(items)], so FirstN(items, 0) is empty.
func FirstN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// FirstWhere returns the first element satisfying fn.
func FirstWhere[T any](items []T, fn func(T) bool) (T, bool) {
	if i := Search(items, fn); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a new slice holding the last n elements, in order.
// n is clamped to [0, len(items)].
func LastN[T any](items []T, n int) []T {
	n = clamp(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out
}

// LastWhere returns the last element satisfying fn.
func LastWhere[T any](items []T, fn func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & search
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element in order.
func Each[T any](items []T, fn func(T, int)) {
	for i, item := range items {
		fn(item, i)
	}
}

// IndexOf returns the index of the first element equal to target, or -1.
// Interface values whose dynamic type cannot be compared with ==, such as a
// nested []any, are matched with reflect.DeepEqual instead of panicking.
func IndexOf[T comparable](items []T, target T) int {
	if !holdsInterface(reflect.TypeFor[T]()) {
		for i, item := range items {
			if item == target {
				return i
			}
		}
		return -1
	}
	for i, item := range items {
		if equal(item, target) {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Contains reports whether items holds an element equal to target, using
// the same equality as [IndexOf].
func Contains[T comparable](items []T, target T) bool {
	return IndexOf(items, target) >= 0
}

// Every reports whether fn holds for every element.
// A nil fn accepts everything, so Every(items, nil) is always true.
func Every[T any](items []T, fn func(T) bool) bool {
	if fn == nil {
		return true
	}
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one element.
// A nil fn defaults to [Truthy].
func Some[T any](items []T, fn func(T) bool) bool {
	if fn == nil {
		fn = func(item T) bool { return Truthy(item) }
	}
	return Search(items, fn) >= 0
}

// Truthy reports whether v is a "set" value: not nil, not the zero value of
// its type (see typeutil.IsZero) and not NaN. Empty but non-nil slices and
// maps are truthy.
func Truthy(v any) bool {
	if typeutil.IsZero(v) {
		return false
	}
	if rv := reflect.ValueOf(v); rv.CanFloat() {
		return !math.IsNaN(rv.Float())
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements for which fn returns true, order preserved.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns the elements for which fn returns false.
// It is the complement of [Filter].
func Reject[T any](items []T, fn func(T) bool) []T {
	return Filter(items, func(item T) bool { return !fn(item) })
}

// Uniq returns the distinct elements of items sorted in ascending order.
// items itself is left untouched.
//
//	Uniq([]int{3, 1, 3, 2, 1}) // → [1 2 3]
func Uniq[T cmp.Ordered](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.Sort(out)
	return slices.Compact(out)
}

// UniqBy removes elements whose key was already seen, keeping the first
// occurrence and the original order.
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping & extraction
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element and returns the results in order.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Pluck returns the value stored under key in every mapping.
// Mappings without the key yield an absent entry, so the result always has
// len(items) elements.
//
//	ages := arr.Pluck(people, "age")
func Pluck[V any](items []map[string]V, key string) []Option[V] {
	out := make([]Option[V], len(items))
	for i, item := range items {
		if v, ok := item[key]; ok {
			out[i] = Present(v)
		}
	}
	return out
}

// PluckPath is like [Pluck] but resolves a dot-notation path through nested
// map[string]any values (see [Lookup]).
func PluckPath(items []map[string]any, path string) []Option[any] {
	out := make([]Option[any], len(items))
	for i, item := range items {
		if v, ok := Lookup(item, path); ok {
			out[i] = Present(v)
		}
	}
	return out
}

// PluckFunc extracts a value of type U from each element of type T.
//
//	names := arr.PluckFunc(users, func(u User) string { return u.Name })
func PluckFunc[T, U any](items []T, fn func(T) U) []U {
	return Map(items, fn)
}

// Invoke calls fn(item, arg) for every element, for its side effects, and
// returns items unchanged.
func Invoke[T, A any](items []T, fn func(T, A), arg A) []T {
	for _, item := range items {
		fn(item, arg)
	}
	return items
}

// Reduce folds items left to right, starting from initial.
// initial is always honoured, including zero values.
//
//	sum := arr.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](items []T, fn func(U, T) U, initial U) U {
	result := initial
	for _, item := range items {
		result = fn(result, item)
	}
	return result
}

// ReduceFirst folds items left to right using the first element as the
// starting accumulator. Returns the zero value and false when items is empty.
func ReduceFirst[T any](items []T, fn func(T, T) T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(items[1:], fn, items[0]), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// SortBy returns a copy of items stably sorted in ascending order of the key
// produced by fn. Elements whose key is absent go last, keeping their
// relative order.
//
//	byAge := arr.SortBy(people, func(p Person) arr.Option[int] {
//	    return arr.Present(p.Age)
//	})
func SortBy[T any, K cmp.Ordered](items []T, fn func(T) Option[K]) []T {
	type keyed struct {
		item T
		key  Option[K]
	}
	decorated := make([]keyed, len(items))
	for i, item := range items {
		decorated[i] = keyed{item: item, key: fn(item)}
	}
	slices.SortStableFunc(decorated, func(a, b keyed) int {
		return compareOptions(a.key, b.key)
	})
	out := make([]T, len(items))
	for i, d := range decorated {
		out[i] = d.item
	}
	return out
}

// SortByKey returns a copy of items stably sorted by the value at the
// dot-notation path. Numbers order before strings; elements where the path is
// missing or holds any other type go last.
func SortByKey(items []map[string]any, path string) []map[string]any {
	return SortBy(items, func(m map[string]any) Option[sortKey] {
		v, ok := Lookup(m, path)
		if !ok {
			return Absent[sortKey]()
		}
		return toSortKey(v)
	})
}

func compareOptions[K cmp.Ordered](a, b Option[K]) int {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	}
	return cmp.Compare(av, bv)
}

// sortKey orders numbers (class 0) before strings (class 1). It is encoded as
// a string so it satisfies cmp.Ordered.
type sortKey string

func toSortKey(v any) Option[sortKey] {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return Absent[sortKey]()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Present(numberKey(float64(rv.Int())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Present(numberKey(float64(rv.Uint())))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return Absent[sortKey]()
		}
		return Present(numberKey(f))
	case reflect.String:
		return Present(sortKey("1" + rv.String()))
	}
	return Absent[sortKey]()
}

// numberKey maps f onto a fixed-width string whose byte order matches the
// numeric order of f.
func numberKey(f float64) sortKey {
	if f == 0 {
		f = 0 // -0 and +0 are equal keys
	}
	bits := math.Float64bits(f)
	if bits>>63 == 1 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	var buf [17]byte
	buf[0] = '0'
	const hex = "0123456789abcdef"
	for i := 16; i > 0; i-- {
		buf[i] = hex[bits&0xf]
		bits >>= 4
	}
	return sortKey(buf[:])
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural operations
// ─────────────────────────────────────────────────────────────────────────────

// Zip groups the elements of every input by position. The result has one
// tuple per index of the longest input; each tuple has len(seqs) entries,
// absent where an input is too short.
//
//	Zip([]any{"a", "b"}, []any{1}) // → [[a 1] [b <absent>]]
func Zip[T any](seqs ...[]T) [][]Option[T] {
	longest := 0
	for _, seq := range seqs {
		longest = max(longest, len(seq))
	}
	out := make([][]Option[T], longest)
	for i := range out {
		tuple := make([]Option[T], len(seqs))
		for j, seq := range seqs {
			if i < len(seq) {
				tuple[j] = Present(seq[i])
			}
		}
		out[i] = tuple
	}
	return out
}

// Zip2 pairs elements of a and b by position up to the longer of the two,
// marking the missing side absent.
func Zip2[A, B any](a []A, b []B) []Pair[Option[A], Option[B]] {
	out := make([]Pair[Option[A], Option[B]], max(len(a), len(b)))
	for i := range out {
		if i < len(a) {
			out[i].First = Present(a[i])
		}
		if i < len(b) {
			out[i].Second = Present(b[i])
		}
	}
	return out
}

// Flatten recursively flattens nested slices and arrays of any element type
// into one flat []any, depth-first and left to right. Strings are leaves;
// a []byte is flattened into its bytes.
//
//	Flatten([]any{1, []any{2, []int{3, 4}}, 5}) // → [1 2 3 4 5]
func Flatten(items any) []any {
	out := make([]any, 0)
	if items == nil {
		return out
	}
	return flattenValue(out, reflect.ValueOf(items))
}

func flattenValue(out []any, v reflect.Value) []any {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return append(out, nil)
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			out = flattenValue(out, v.Index(i))
		}
		return out
	}
	return append(out, v.Interface())
}

// Intersection returns the elements of the first slice that occur in every
// other slice. Each element appears once, in first-slice order. Equality is
// that of [IndexOf].
//
//	Intersection([]int{1, 2, 3}, []int{2, 3, 4}) // → [2 3]
func Intersection[T comparable](seqs ...[]T) []T {
	out := make([]T, 0)
	if len(seqs) == 0 {
		return out
	}
	others := make([]*set[T], len(seqs)-1)
	for i, seq := range seqs[1:] {
		others[i] = newSet(seq)
	}
	seen := newSet[T](nil)
outer:
	for _, item := range seqs[0] {
		if seen.has(item) {
			continue
		}
		for _, other := range others {
			if !other.has(item) {
				continue outer
			}
		}
		seen.add(item)
		out = append(out, item)
	}
	return out
}

// Difference returns the elements of first that occur in none of rest.
// Duplicates within first are kept. Equality is that of [IndexOf].
//
//	Difference([]int{1, 2, 3, 4}, []int{2, 4}) // → [1 3]
func Difference[T comparable](first []T, rest ...[]T) []T {
	exclude := newSet[T](nil)
	for _, seq := range rest {
		for _, item := range seq {
			exclude.add(item)
		}
	}
	out := make([]T, 0, len(first))
	for _, item := range first {
		if !exclude.has(item) {
			out = append(out, item)
		}
	}
	return out
}

// set is a hash set that also accepts values which cannot be map keys.
// Those are kept in loose and searched linearly.
type set[T comparable] struct {
	keys  map[T]struct{}
	loose []T
	check bool
}

func newSet[T comparable](items []T) *set[T] {
	s := &set[T]{
		keys:  make(map[T]struct{}, len(items)),
		check: holdsInterface(reflect.TypeFor[T]()),
	}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *set[T]) add(v T) {
	switch {
	case !s.check || hashable(v):
		s.keys[v] = struct{}{}
	case !s.has(v):
		s.loose = append(s.loose, v)
	}
}

func (s *set[T]) has(v T) bool {
	if !s.check || hashable(v) {
		_, ok := s.keys[v]
		return ok
	}
	for _, l := range s.loose {
		if reflect.DeepEqual(l, v) {
			return true
		}
	}
	return false
}

// holdsInterface reports whether values of t may carry an interface whose
// dynamic type makes == panic.
func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

func hashable[T comparable](v T) bool {
	return reflect.ValueOf(&v).Elem().Comparable()
}

func equal[T comparable](a, b T) bool {
	if hashable(a) && hashable(b) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
