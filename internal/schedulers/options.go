package schedulers

import (
	"io"
	"log/slog"
)

// DefaultQueueCapacity matches the fixed ready queue size of the reference simulator.
const DefaultQueueCapacity = 10

// MaxQueueCapacity bounds the ready queue allocation.
const MaxQueueCapacity = 1 << 16

// MaxDispatches bounds the number of slices a round robin run may record.
const MaxDispatches = 100_000

type options struct {
	queueCapacity int
	retryDropped  bool
	logger        *slog.Logger
}

type Option func(*options)

// WithQueueCapacity bounds the round robin ready queue.
func WithQueueCapacity(capacity int) Option {
	return func(o *options) { o.queueCapacity = capacity }
}

// WithRetryDropped re-admits processes whose re-enqueue was rejected as soon
// as a slot frees up, instead of letting them stall.
func WithRetryDropped(retry bool) Option {
	return func(o *options) { o.retryDropped = retry }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func buildOptions(opts []Option) options {
	o := options{
		queueCapacity: DefaultQueueCapacity,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
