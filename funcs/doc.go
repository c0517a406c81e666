// Package funcs wraps functions to change when and how often they run:
// [Once] runs a function a single time, [Memoize] caches results per
// argument, and [Delay] defers a call onto a timer.
//
// # Private state
//
// Every wrapper owns its state. Two wrappers built from the same function
// never share a latch or a cache:
//
//	a := funcs.Once(loadConfig)
//	b := funcs.Once(loadConfig)
//	a(); b() // loadConfig ran twice, once per wrapper
//
// # Concurrency
//
// Wrappers returned by [Once] and [Memoize] are safe for concurrent use.
// Delayed calls run on their own goroutine; a panic there is recovered and
// logged through the logger given with [WithLogger] (silent by default).
package funcs
