package funcs

import "sync"

// Once returns a function that calls fn on its first invocation and returns
// that first result on every invocation after it. Each call to Once creates
// a new latch.
//
// If fn panics, the panic reaches the first caller and later calls return
// the zero value of T without calling fn again.
func Once[T any](fn func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() { result = fn() })
		return result
	}
}
