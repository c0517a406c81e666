package funcs

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Timer is the handle of a delayed call.
type Timer struct {
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
	stopped   atomic.Bool
}

// Delay calls fn on its own goroutine once wait has elapsed and returns
// immediately. The returned Timer cancels the call or waits for it.
//
//	t := funcs.Delay(flush, 500*time.Millisecond)
//	defer t.Stop()
func Delay(fn func(), wait time.Duration, opts ...Option) *Timer {
	o := newOptions(opts)
	t := &Timer{done: make(chan struct{})}
	t.timer = time.AfterFunc(wait, func() { t.run(fn, wait, o.logger) })
	return t
}

// DelayWith calls fn(args...) after wait. args is copied, so later changes
// to the caller's slice do not reach fn. opts behave as in [Delay].
//
// Callbacks with a fixed parameter list, such as func(string, int), are
// delayed by closing over their arguments and passing the closure to [Delay].
//
//	funcs.DelayWith(greet, time.Second, []string{"a", "b"}) // greet("a", "b") in 1s
func DelayWith[A any](fn func(...A), wait time.Duration, args []A, opts ...Option) *Timer {
	args = slices.Clone(args)
	return Delay(func() { fn(args...) }, wait, opts...)
}

// DelayContext is like [Delay] but also cancels the pending call when ctx is
// done first.
func DelayContext(ctx context.Context, fn func(), wait time.Duration, opts ...Option) *Timer {
	t := Delay(fn, wait, opts...)
	if ctx.Done() == nil {
		return t
	}
	logger := newOptions(opts).logger
	go func() {
		select {
		case <-ctx.Done():
			if t.Stop() {
				logger.Debug("delayed call cancelled",
					zap.Duration("wait", wait),
					zap.Error(context.Cause(ctx)),
				)
			}
		case <-t.done:
		}
	}()
	return t
}

func (t *Timer) run(fn func(), wait time.Duration, logger *zap.Logger) {
	defer t.finish()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("delayed call panicked",
				zap.Duration("wait", wait),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()
	fn()
}

func (t *Timer) finish() {
	t.closeOnce.Do(func() { close(t.done) })
}

// Stop cancels the call if it has not started yet and reports whether it did
// so. Stop returns false once the call has begun, finished or already been
// stopped.
func (t *Timer) Stop() bool {
	if !t.timer.Stop() {
		return false
	}
	t.stopped.Store(true)
	t.finish()
	return true
}

// Stopped reports whether the call was cancelled before it ran.
func (t *Timer) Stopped() bool { return t.stopped.Load() }

// Done returns a channel that is closed once the call has returned or has
// been cancelled.
func (t *Timer) Done() <-chan struct{} { return t.done }

// Wait blocks until the call has returned or been cancelled, or ctx is done.
func (t *Timer) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
