package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-underscore-utils/arr"
)

// makeInts creates a []int of size n for benchmarks.
func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkFilter(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Filter(items, func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkUniq(b *testing.B) {
	items := arr.Shuffle(append(makeInts(5_000), makeInts(5_000)...))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Uniq(items)
	}
}

func BenchmarkIntersection(b *testing.B) {
	a, other := makeInts(10_000), makeInts(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Intersection(a, other)
	}
}

func BenchmarkShuffleWith(b *testing.B) {
	items := makeInts(10_000)
	r := arr.NewSeededRand([]byte("bench"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.ShuffleWith(items, r)
	}
}

func BenchmarkFlatten(b *testing.B) {
	nested := make([]any, 1_000)
	for i := range nested {
		nested[i] = []any{i, []int{i, i}}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Flatten(nested)
	}
}
