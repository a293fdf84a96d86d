// Package cache provides a generic, concurrency-safe in-process key/value
// cache with a capacity target and time-based expiration.
//
// The cache is split into a map core and a pluggable eviction policy. The
// core (Map) owns the entries and implements lookups, inserts and removals
// with lazy expiry. The policy (Policy) is consulted through five hooks and
// keeps its own bookkeeping, such as recency order. The package ships one
// policy, LRU.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - Lock-free map operations built on compare-and-swap of exact entries
//   - Per-cache live time (since creation) and idle time (since last read)
//   - Values may report their own staleness by implementing Expirer
//   - Pluggable eviction policies composed into the map, not inherited
//
// # Usage
//
// Create a cache with capacity 100, entries living at most ten minutes and
// expiring after one idle minute:
//
//	c, err := cache.New[string, *User](100, 10*time.Minute, time.Minute)
//	if err != nil {
//		return err
//	}
//
//	c.Put("user:123", user)
//
//	u, ok, err := c.Get("user:123")
//	if err != nil {
//		return err
//	}
//	if ok {
//		// use u
//	}
//
//	c.Remove("user:123")
//
// A zero live or idle time disables that limit; with both zero entries never
// expire by time.
//
// # Expiration
//
// Expiry is lazy. There is no background goroutine: an expired entry stays
// resident until Get, ContainsKey, ContainsValue or Put touches it, or
// RemoveExpired sweeps the whole map. Len therefore counts expired entries
// nobody has looked at yet.
//
// A stored value can carry its own deadline:
//
//	type Token struct {
//		Value     string
//		ExpiresAt time.Time
//	}
//
//	func (t *Token) IsExpired() bool { return time.Now().After(t.ExpiresAt) }
//
// Such a value is treated as expired as soon as IsExpired reports true,
// regardless of the cache timers.
//
// Put and Remove never hand back a replaced or removed value that had
// already expired.
//
// # Capacity Management
//
// Capacity is a target. When Put inserts a new key into a full map:
//
//  1. Expired entries are swept.
//  2. If the sweep freed nothing, the policy's OnFull names victims.
//  3. Victims are evicted and the new entry is stored.
//
// The LRU policy performs expired-only reclamation by default: OnFull only
// names entries whose timers have lapsed, so a map full of live entries
// grows past capacity. WithStrictEviction switches to true LRU eviction of
// the least recently used live entry when nothing has expired.
//
// PutAll is a bulk-load path that bypasses capacity enforcement and the
// OnCreate hook.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Updates of a single key are
// linearizable: removals compare-and-delete the exact entry that was
// observed, so a concurrent overwrite is never evicted by mistake. Len,
// ContainsValue and RemoveExpired are weakly consistent. A policy's own
// state is guarded by the policy; LRU uses a mutex.
//
// # Errors
//
// Every argument failure wraps ErrInvalidArgument:
//
//   - ErrInvalidCapacity - capacity <= 0 at construction
//   - ErrInvalidDuration - negative live or idle time
//   - ErrNilKey, ErrNilValue - nil-equivalent key or value
//   - ErrNilMap - nil map passed to PutAll
//   - ErrNilPolicy - nil policy passed to NewMap
//
// Missing or expired keys are not errors; they are reported through the
// boolean results.
//
// # Configuration
//
// Config can be filled from the environment:
//
//	var cfg cache.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	c, err := cache.NewFromConfig[string, []byte](cfg, cache.WithLogger(log))
package cache
