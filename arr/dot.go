package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Key-value mappings
//
// Lookup and Get read values out of nested map[string]any structures using
// dot-separated paths. Extend and Defaults merge mappings into a target.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	Lookup(m, "user.address.city") → "London", true
//	Get(m, "user.age", 0)          → 0
// ─────────────────────────────────────────────────────────────────────────────

// Lookup resolves a dot-notation path in m. A key present with a nil value is
// reported as found.
func Lookup(m map[string]any, path string) (any, bool) {
	current := m
	for {
		seg, rest, nested := strings.Cut(path, ".")
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current, path = next, rest
	}
}

// Get returns the value at path, or def[0] (or nil) when the path does not
// resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := Lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether path resolves in m.
func Has(m map[string]any, path string) bool {
	_, ok := Lookup(m, path)
	return ok
}

// Extend copies every key of each source into dst, in argument order, so
// later sources overwrite earlier ones and dst. dst is modified in place and
// returned; a nil dst is allocated first.
//
//	Extend(map[string]int{"a": 1}, map[string]int{"b": 2}, map[string]int{"a": 3})
//	// → map[a:3 b:2]
func Extend[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults is like [Extend] but never overwrites a key that dst already
// holds, so the first source to supply a key wins.
//
//	Defaults(map[string]int{"a": 1}, map[string]int{"a": 9, "b": 2})
//	// → map[a:1 b:2]
func Defaults[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, exists := dst[k]; !exists {
				dst[k] = v
			}
		}
	}
	return dst
}
