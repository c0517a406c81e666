package arr

import "fmt"

// Option marks a value that may be absent. The absent state is distinct from
// every value of T, including its zero value, so a present 0 or "" is never
// confused with "nothing here".
//
// Option is the element type produced by [Zip], [Pluck] and friends wherever a
// position can be empty.
type Option[T any] struct {
	value T
	ok    bool
}

// Present wraps v as a present value.
func Present[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// Absent returns the absent Option of type T.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool { return o.ok }

// Or returns the wrapped value, or def when o is absent.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// String renders the value with %v, or "<absent>".
func (o Option[T]) String() string {
	if !o.ok {
		return "<absent>"
	}
	return fmt.Sprintf("%v", o.value)
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
