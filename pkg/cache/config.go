package cache

import "time"

// Config holds cache settings that can be populated from the environment,
// e.g. with config.Load.
type Config struct {
	Capacity       int           `env:"CACHE_CAPACITY" envDefault:"1024"`
	MaxLiveTime    time.Duration `env:"CACHE_MAX_LIVE_TIME" envDefault:"0s"`
	MaxIdleTime    time.Duration `env:"CACHE_MAX_IDLE_TIME" envDefault:"0s"`
	StrictEviction bool          `env:"CACHE_STRICT_EVICTION" envDefault:"false"`
}

// NewFromConfig creates an LRU-governed cache from cfg.
// Options passed explicitly are applied after the ones derived from cfg.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option) (*Map[K, V], error) {
	if cfg.StrictEviction {
		opts = append([]Option{WithStrictEviction()}, opts...)
	}
	return New[K, V](cfg.Capacity, cfg.MaxLiveTime, cfg.MaxIdleTime, opts...)
}
