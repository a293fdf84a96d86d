package cache_test

import (
	"sync"
	"sync/atomic"
	"time"
)

// manualClock is a time source that only moves when told to.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// token is a stored value that can be revoked independently of cache timers.
type token struct {
	id      string
	revoked atomic.Bool
}

func (t *token) IsExpired() bool {
	return t.revoked.Load()
}
