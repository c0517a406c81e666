package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore-utils/collections"
)

func ExampleCollection_Each() {
	ages := collections.FromMap(map[string]int{"bob": 27, "alice": 31})
	ages.Each(func(age int, name collections.Key, _ *collections.Collection[int]) {
		fmt.Println(name, age)
	})
	// Output:
	// alice 31
	// bob 27
}

func ExampleCollection_Every() {
	evens := collections.New(2, 4, 6)
	fmt.Println(evens.Every(func(n int) bool { return n%2 == 0 }))
	// Output: true
}

func ExampleCollection_Some() {
	flags := collections.FromMap(map[string]bool{"debug": false, "verbose": true})
	fmt.Println(flags.Some(nil))
	// Output: true
}

func ExampleContains() {
	ports := collections.FromMap(map[string]int{"http": 80, "https": 443})
	fmt.Println(collections.Contains(ports, 443), collections.Contains(ports, 22))
	// Output: true false
}

func ExampleMap() {
	words := collections.FromMap(map[string]string{"x": "go", "y": "gopher"})
	lengths := collections.Map(words, func(s string, _ collections.Key) int { return len(s) })
	fmt.Println(lengths)
	// Output: {"x":2,"y":6}
}
