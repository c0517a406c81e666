package funcs

import "go.uber.org/zap"

// Option configures a delayed call.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that reports panics and cancellations of
// delayed calls. A nil logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
