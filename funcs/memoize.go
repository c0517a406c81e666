package funcs

import "sync"

// Memo caches the results of a single-argument function by argument.
// A result is cached as soon as it is computed, zero values included.
//
// Memo is safe for concurrent use. fn runs outside the lock, so a memoized
// function may call its own wrapper recursively; two goroutines asking for
// the same uncached key at once may both run fn, and the first result stored
// wins.
type Memo[K comparable, V any] struct {
	fn      func(K) V
	mu      sync.RWMutex
	results map[K]V
}

// NewMemo returns an empty cache in front of fn.
func NewMemo[K comparable, V any](fn func(K) V) *Memo[K, V] {
	return &Memo[K, V]{fn: fn, results: make(map[K]V)}
}

// Call returns the cached result for key, computing and storing it on the
// first request.
func (m *Memo[K, V]) Call(key K) V {
	m.mu.RLock()
	v, ok := m.results[key]
	m.mu.RUnlock()
	if ok {
		return v
	}

	v = m.fn(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.results[key]; ok {
		return cached
	}
	m.results[key] = v
	return v
}

// Len returns the number of cached keys.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}

// Forget drops the cached result for key.
func (m *Memo[K, V]) Forget(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.results, key)
}

// Flush drops every cached result.
func (m *Memo[K, V]) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.results)
}

// Memoize returns a function that caches fn's result per argument. Use
// [NewMemo] to inspect or reset the cache.
//
//	var fib func(int) int
//	fib = funcs.Memoize(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	return NewMemo(fn).Call
}
