package funcs_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore-utils/funcs"
)

func TestOnce(t *testing.T) {
	calls := 0
	wrapped := funcs.Once(func() int {
		calls++
		return 42
	})

	for range 5 {
		assert.Equal(t, 42, wrapped())
	}
	assert.Equal(t, 1, calls)
}

func TestOnceWrappersAreIndependent(t *testing.T) {
	calls := 0
	fn := func() int {
		calls++
		return calls
	}

	a := funcs.Once(fn)
	b := funcs.Once(fn)

	assert.Equal(t, 1, a())
	assert.Equal(t, 2, b())
	assert.Equal(t, 1, a())
	assert.Equal(t, 2, b())
	assert.Equal(t, 2, calls)
}

func TestOnceCachesZeroValue(t *testing.T) {
	calls := 0
	wrapped := funcs.Once(func() string {
		calls++
		return ""
	})
	wrapped()
	wrapped()
	assert.Equal(t, 1, calls)
}

func TestOnceConcurrent(t *testing.T) {
	var calls atomic.Int32
	wrapped := funcs.Once(func() int32 { return calls.Add(1) })

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, int32(1), wrapped())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestOncePanic(t *testing.T) {
	calls := 0
	wrapped := funcs.Once(func() int {
		calls++
		panic("boom")
	})

	assert.Panics(t, func() { wrapped() })
	assert.NotPanics(t, func() { assert.Zero(t, wrapped()) })
	assert.Equal(t, 1, calls)
}
