package cache

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/cachemap/pkg/logger"
)

// Option configures a cache or an LRU policy.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	clock          func() time.Time
	strictEviction bool
}

func defaultOptions() *options {
	return &options{
		logger: logger.Discard(),
		clock:  time.Now,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithLogger sets the logger used for eviction diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now as the time source for entry timers.
// Nil is ignored.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithStrictEviction makes the LRU policy evict the least recently used
// live entry when the map is full and nothing has expired. Without it the
// policy only reclaims expired entries and the map may grow past capacity.
func WithStrictEviction() Option {
	return func(o *options) {
		o.strictEviction = true
	}
}
