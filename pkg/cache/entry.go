package cache

import (
	"sync/atomic"
	"time"
)

// Expirer is an optional capability of stored values. A value that
// implements it can report itself stale regardless of the entry timers,
// e.g. a token carrying a server-issued deadline.
type Expirer interface {
	IsExpired() bool
}

// Entry is one cached mapping plus its liveness metadata.
// Key and value never change after construction; only the last access
// time moves, and only when the value is read through Value.
type Entry[K comparable, V any] struct {
	key         K
	value       V
	createdAt   time.Time
	maxLiveTime time.Duration
	maxIdleTime time.Duration
	now         func() time.Time

	// nanoseconds between createdAt and the last read
	lastAccess atomic.Int64
	removed    atomic.Bool
}

// NewEntry creates an entry stamped with the current time of clock.
// A zero maxLiveTime or maxIdleTime disables expiry on that axis.
// A nil clock means time.Now.
func NewEntry[K comparable, V any](key K, value V, maxLiveTime, maxIdleTime time.Duration, clock func() time.Time) *Entry[K, V] {
	if clock == nil {
		clock = time.Now
	}
	return &Entry[K, V]{
		key:         key,
		value:       value,
		createdAt:   clock(),
		maxLiveTime: maxLiveTime,
		maxIdleTime: maxIdleTime,
		now:         clock,
	}
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

// Value returns the stored value and records the read as the last access.
func (e *Entry[K, V]) Value() V {
	e.touch()
	return e.value
}

// Peek returns the stored value without refreshing the last access time.
func (e *Entry[K, V]) Peek() V {
	return e.value
}

func (e *Entry[K, V]) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry[K, V]) LastAccessedAt() time.Time {
	return e.createdAt.Add(time.Duration(e.lastAccess.Load()))
}

func (e *Entry[K, V]) MaxLiveTime() time.Duration {
	return e.maxLiveTime
}

func (e *Entry[K, V]) MaxIdleTime() time.Duration {
	return e.maxIdleTime
}

// Removed reports whether the owning map has already dropped this entry.
// Policies use it to ignore late reads that race with an eviction.
func (e *Entry[K, V]) Removed() bool {
	return e.removed.Load()
}

// IsExpired reports whether the entry outlived one of its time limits.
// The live limit counts from creation, the idle limit from the last read.
// It does not consult the value's own Expirer capability; the map does that.
func (e *Entry[K, V]) IsExpired() bool {
	if e.maxLiveTime <= 0 && e.maxIdleTime <= 0 {
		return false
	}
	now := e.now()
	if e.maxLiveTime > 0 && now.Sub(e.createdAt) > e.maxLiveTime {
		return true
	}
	return e.maxIdleTime > 0 && now.Sub(e.LastAccessedAt()) > e.maxIdleTime
}

func (e *Entry[K, V]) touch() {
	d := int64(e.now().Sub(e.createdAt))
	for {
		cur := e.lastAccess.Load()
		if d <= cur || e.lastAccess.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (e *Entry[K, V]) markRemoved() bool {
	return e.removed.CompareAndSwap(false, true)
}

// expired combines the entry timers with the value's own capability.
func (e *Entry[K, V]) expired() bool {
	if e.IsExpired() {
		return true
	}
	if ex, ok := any(e.value).(Expirer); ok {
		return ex.IsExpired()
	}
	return false
}
