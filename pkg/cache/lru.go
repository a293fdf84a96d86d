package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a Policy that keeps entries in recency order and reclaims
// expired entries when the map runs out of room.
//
// By default OnFull performs expired-only reclamation: it never evicts a
// live entry, so a map full of live entries grows past its capacity. With
// WithStrictEviction it falls back to the least recently used live entry.
type LRU[K comparable, V any] struct {
	maxLiveTime time.Duration
	maxIdleTime time.Duration
	clock       func() time.Time
	strict      bool

	mu    sync.Mutex
	index map[*Entry[K, V]]*list.Element
	order *list.List // Front = least recently used, Back = most recently used
}

// NewLRU creates an LRU policy whose entries expire after maxLiveTime since
// creation or maxIdleTime since their last read. Zero disables a limit.
func NewLRU[K comparable, V any](maxLiveTime, maxIdleTime time.Duration, opts ...Option) (*LRU[K, V], error) {
	if maxLiveTime < 0 || maxIdleTime < 0 {
		return nil, ErrInvalidDuration
	}
	o := applyOptions(opts)
	return &LRU[K, V]{
		maxLiveTime: maxLiveTime,
		maxIdleTime: maxIdleTime,
		clock:       o.clock,
		strict:      o.strictEviction,
		index:       make(map[*Entry[K, V]]*list.Element),
		order:       list.New(),
	}, nil
}

func (p *LRU[K, V]) NewEntry(key K, value V) *Entry[K, V] {
	return NewEntry(key, value, p.maxLiveTime, p.maxIdleTime, p.clock)
}

func (p *LRU[K, V]) OnCreate(e *Entry[K, V]) {
	p.touch(e)
}

func (p *LRU[K, V]) OnRead(e *Entry[K, V]) {
	p.touch(e)
}

func (p *LRU[K, V]) OnRemove(e *Entry[K, V]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.index[e]; ok {
		p.order.Remove(elem)
		delete(p.index, e)
	}
}

// OnFull returns the indexed entries that have expired. In strict
// mode, when none has, it returns the least recently used entry instead.
func (p *LRU[K, V]) OnFull() []*Entry[K, V] {
	p.mu.Lock()
	defer p.mu.Unlock()

	var victims []*Entry[K, V]
	for elem := p.order.Front(); elem != nil; elem = elem.Next() {
		if e := elem.Value.(*Entry[K, V]); e.expired() {
			victims = append(victims, e)
		}
	}
	if len(victims) == 0 && p.strict {
		if elem := p.order.Front(); elem != nil {
			victims = append(victims, elem.Value.(*Entry[K, V]))
		}
	}
	return victims
}

// Len returns the number of entries tracked by the recency index.
func (p *LRU[K, V]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.order.Len()
}

// Keys returns the tracked keys from least to most recently used.
func (p *LRU[K, V]) Keys() []K {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]K, 0, p.order.Len())
	for elem := p.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(*Entry[K, V]).Key())
	}
	return out
}

// touch moves e to the most recently used end. Entries the map already
// dropped are left out so a read racing an eviction cannot leak them.
func (p *LRU[K, V]) touch(e *Entry[K, V]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e.Removed() {
		return
	}
	if elem, ok := p.index[e]; ok {
		p.order.Remove(elem)
	}
	p.index[e] = p.order.PushBack(e)
}
