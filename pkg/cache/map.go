package cache

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/cachemap/pkg/logger"
)

// maxCASRetries bounds how many times a lookup re-reads a slot after losing
// a compare-and-delete race. Each lost race means the slot changed, so an
// exhausted loop has only ever seen expired entries.
const maxCASRetries = 16

// eviction reasons used in log records
const (
	reasonExpired  = "expired"
	reasonCapacity = "capacity"
	reasonReplaced = "replaced"
	reasonRemoved  = "removed"
)

// Map is a bounded, concurrency-safe key/value cache with time-based expiry.
// Expiry is lazy: expired entries stay resident until an operation touches
// them or RemoveExpired sweeps the map. Eviction order is decided by the
// Policy the map was built with.
type Map[K comparable, V any] struct {
	capacity int
	entries  sync.Map // K -> *Entry[K, V]
	size     atomic.Int64
	policy   Policy[K, V]
	logger   *slog.Logger
}

// New creates a cache governed by the LRU policy with expired-only
// reclamation. A zero maxLiveTime or maxIdleTime disables that limit.
func New[K comparable, V any](capacity int, maxLiveTime, maxIdleTime time.Duration, opts ...Option) (*Map[K, V], error) {
	lru, err := NewLRU[K, V](maxLiveTime, maxIdleTime, opts...)
	if err != nil {
		return nil, err
	}
	return NewMap[K, V](capacity, lru, opts...)
}

// NewMap creates a cache that delegates eviction decisions to policy.
func NewMap[K comparable, V any](capacity int, policy Policy[K, V], opts ...Option) (*Map[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if isNil(policy) {
		return nil, ErrNilPolicy
	}
	o := applyOptions(opts)
	return &Map[K, V]{
		capacity: capacity,
		policy:   policy,
		logger:   o.logger.With(logger.Component("cache")),
	}, nil
}

// Capacity returns the configured entry ceiling.
func (m *Map[K, V]) Capacity() int {
	return m.capacity
}

// Len returns the number of resident entries, including expired entries
// that no operation has touched yet.
func (m *Map[K, V]) Len() int {
	return int(m.size.Load())
}

// IsFull reports whether the map holds at least capacity entries.
func (m *Map[K, V]) IsFull() bool {
	return m.Len() >= m.capacity
}

// ContainsKey reports whether key maps to a live entry.
// An expired entry found for key is evicted.
func (m *Map[K, V]) ContainsKey(key K) (bool, error) {
	if isNil(key) {
		return false, ErrNilKey
	}
	for range maxCASRetries {
		e, ok := m.load(key)
		if !ok {
			return false, nil
		}
		if !e.expired() {
			return true, nil
		}
		if m.entries.CompareAndDelete(key, e) {
			m.evicted(e, reasonExpired)
			return false, nil
		}
	}
	m.logger.Debug("lookup retries exhausted", logger.Key(key))
	return false, nil
}

// ContainsValue reports whether a live entry holds value.
// The scan is linear and stops at the first match: an expired match is
// evicted and reported as absent, a live match counts as a read.
func (m *Map[K, V]) ContainsValue(value V) (bool, error) {
	if isNil(value) {
		return false, ErrNilValue
	}
	return m.ContainsValueFunc(func(v V) bool {
		return valuesEqual(v, value)
	})
}

// ContainsValueFunc is ContainsValue with a caller-supplied match.
func (m *Map[K, V]) ContainsValueFunc(match func(V) bool) (bool, error) {
	if match == nil {
		return false, ErrInvalidArgument
	}
	var found *Entry[K, V]
	m.entries.Range(func(_, v any) bool {
		e := v.(*Entry[K, V])
		if match(e.Peek()) {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		return false, nil
	}
	if found.expired() {
		if m.entries.CompareAndDelete(found.Key(), found) {
			m.evicted(found, reasonExpired)
		}
		return false, nil
	}
	m.policy.OnRead(found)
	found.touch()
	return true, nil
}

// Get returns the live value stored for key.
// An expired entry found for key is evicted and reported as absent.
func (m *Map[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if isNil(key) {
		return zero, false, ErrNilKey
	}
	for range maxCASRetries {
		e, ok := m.load(key)
		if !ok {
			return zero, false, nil
		}
		if !e.expired() {
			m.policy.OnRead(e)
			return e.Value(), true, nil
		}
		if m.entries.CompareAndDelete(key, e) {
			m.evicted(e, reasonExpired)
			return zero, false, nil
		}
	}
	m.logger.Debug("lookup retries exhausted", logger.Key(key))
	return zero, false, nil
}

// IsExpired reports whether key is absent or maps to an expired entry.
// Unlike Get it never evicts.
func (m *Map[K, V]) IsExpired(key K) (bool, error) {
	if isNil(key) {
		return false, ErrNilKey
	}
	e, ok := m.load(key)
	if !ok {
		return true, nil
	}
	return e.expired(), nil
}

// Put stores value under key and returns the value it replaced.
// A replaced value that had already expired is not returned.
//
// When key is new and the map is full, expired entries are swept first;
// if that frees nothing the policy's OnFull picks victims. A policy that
// names no victim lets the map grow past capacity.
func (m *Map[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	if isNil(key) {
		return zero, false, ErrNilKey
	}
	if isNil(value) {
		return zero, false, ErrNilValue
	}

	e := m.policy.NewEntry(key, value)
	if m.isFullFor(key) && !m.RemoveExpired() {
		m.makeRoom()
	}
	m.policy.OnCreate(e)

	prev, loaded := m.entries.Swap(key, e)
	if !loaded {
		m.size.Add(1)
		return zero, false, nil
	}
	old := prev.(*Entry[K, V])
	m.released(old, reasonReplaced)
	if old.expired() {
		return zero, false, nil
	}
	return old.Peek(), true, nil
}

// PutAll stores every pair of values, replacing existing entries.
// It is a bulk-load path: capacity is not enforced and the policy's
// OnCreate hook is skipped, so loaded entries join the policy's
// bookkeeping on their first read. All pairs are validated before any
// is stored.
func (m *Map[K, V]) PutAll(values map[K]V) error {
	if values == nil {
		return ErrNilMap
	}
	for k, v := range values {
		if isNil(k) {
			return ErrNilKey
		}
		if isNil(v) {
			return ErrNilValue
		}
	}
	for k, v := range values {
		prev, loaded := m.entries.Swap(k, m.policy.NewEntry(k, v))
		if !loaded {
			m.size.Add(1)
			continue
		}
		m.released(prev.(*Entry[K, V]), reasonReplaced)
	}
	return nil
}

// Remove deletes key and returns its value unless the entry had expired.
func (m *Map[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if isNil(key) {
		return zero, false, ErrNilKey
	}
	prev, ok := m.entries.LoadAndDelete(key)
	if !ok {
		return zero, false, nil
	}
	e := prev.(*Entry[K, V])
	m.evicted(e, reasonRemoved)
	if e.expired() {
		return zero, false, nil
	}
	return e.Peek(), true, nil
}

// RemoveExpired sweeps the map once and evicts every expired entry.
// It reports whether anything was removed.
func (m *Map[K, V]) RemoveExpired() bool {
	removed := false
	m.entries.Range(func(k, v any) bool {
		e := v.(*Entry[K, V])
		if e.expired() && m.entries.CompareAndDelete(k, e) {
			m.evicted(e, reasonExpired)
			removed = true
		}
		return true
	})
	return removed
}

func (m *Map[K, V]) load(key K) (*Entry[K, V], bool) {
	v, ok := m.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*Entry[K, V]), true
}

// isFullFor reports whether storing key would add an entry to a full map.
func (m *Map[K, V]) isFullFor(key K) bool {
	if !m.IsFull() {
		return false
	}
	_, resident := m.entries.Load(key)
	return !resident
}

func (m *Map[K, V]) makeRoom() {
	victims := m.policy.OnFull()
	evicted := 0
	for _, e := range victims {
		if e != nil && m.entries.CompareAndDelete(e.Key(), e) {
			m.evicted(e, reasonCapacity)
			evicted++
		}
	}
	if evicted == 0 {
		m.logger.Debug("capacity exceeded, nothing to evict",
			logger.Capacity(m.capacity),
			logger.Size(m.Len()),
		)
	}
}

// evicted finishes the removal of an entry the caller deleted from the map.
func (m *Map[K, V]) evicted(e *Entry[K, V], reason string) {
	m.size.Add(-1)
	m.released(e, reason)
}

// released tells the policy an entry left the map without changing size,
// which is the case for entries replaced in place.
func (m *Map[K, V]) released(e *Entry[K, V], reason string) {
	if !e.markRemoved() {
		return
	}
	m.policy.OnRemove(e)
	m.logger.Debug("entry evicted", logger.Key(e.Key()), logger.Reason(reason))
}
