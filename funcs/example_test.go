package funcs_test

import (
	"fmt"
	"time"

	"github.com/hasbyte1/go-underscore-utils/funcs"
)

func ExampleOnce() {
	initialize := funcs.Once(func() string {
		fmt.Println("initializing")
		return "ready"
	})
	fmt.Println(initialize())
	fmt.Println(initialize())
	// Output:
	// initializing
	// ready
	// ready
}

func ExampleMemoize() {
	slowSquare := funcs.Memoize(func(n int) int {
		fmt.Println("computing", n)
		return n * n
	})
	fmt.Println(slowSquare(4))
	fmt.Println(slowSquare(4))
	// Output:
	// computing 4
	// 16
	// 16
}

func ExampleDelayWith() {
	timer := funcs.DelayWith(func(words ...string) {
		fmt.Println(words)
	}, 10*time.Millisecond, []string{"hello", "world"})
	<-timer.Done()
	// Output: [hello world]
}
