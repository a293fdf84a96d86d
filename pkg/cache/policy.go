package cache

// Policy is the strategy a Map consults around every mutation.
// The map owns the key to entry mapping; a policy only keeps its own
// bookkeeping (recency, frequency, ...) and names eviction victims.
//
// Hooks are called synchronously from the goroutine performing the map
// operation, possibly from many goroutines at once, so implementations
// must guard their own state. Hooks must not call back into the Map.
type Policy[K comparable, V any] interface {
	// NewEntry builds the entry stored for a Put.
	NewEntry(key K, value V) *Entry[K, V]
	// OnCreate is called before a new entry becomes visible in the map.
	OnCreate(e *Entry[K, V])
	// OnRead is called when a live entry is returned to a caller.
	// It may race with OnRemove for the same entry; check e.Removed().
	OnRead(e *Entry[K, V])
	// OnRemove is called once for every entry that leaves the map.
	OnRemove(e *Entry[K, V])
	// OnFull is called when an insert of a new key finds the map at capacity
	// and an expiry sweep freed nothing. The returned entries are evicted
	// unless a concurrent writer replaced them first.
	OnFull() []*Entry[K, V]
}
