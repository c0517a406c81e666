package collections

// Enumerable is the interface satisfied by [Collection][V].
//
// Accept Enumerable in your own functions when they only need to walk the
// values, so that they work for sequences and mappings alike.
type Enumerable[V any] interface {
	// Each calls fn(value, key, collection) for every element.
	Each(fn func(V, Key, *Collection[V]))

	// Every reports whether fn holds for every value.
	Every(fn func(V) bool) bool

	// Len returns the number of elements.
	Len() int

	// Some reports whether fn holds for at least one value.
	Some(fn func(V) bool) bool

	// Values returns every value in iteration order.
	Values() []V
}

var _ Enumerable[int] = (*Collection[int])(nil)
