// Package cache provides the in-process TTL cache shared by the feed and
// OSINT aggregators.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"newsdeck/utils/clock"
)

// Entry is a cached value and the time it was written.
type Entry[V any] struct {
	Value    V
	CachedAt time.Time
}

// Stats holds cache statistics.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// TTLCache serves an entry as-is while now-CachedAt < ttl and treats it as
// absent afterwards. Expired entries are dropped lazily on read.
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]Entry[V]
	ttl     time.Duration
	clock   clock.Clock
	hits    int64
	misses  int64
}

func NewTTLCache[K comparable, V any](ttl time.Duration, c clock.Clock) *TTLCache[K, V] {
	if c == nil {
		c = clock.RealClock{}
	}
	return &TTLCache[K, V]{
		entries: make(map[K]Entry[V]),
		ttl:     ttl,
		clock:   c,
	}
}

// Get returns the value for key if present and fresh.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()

	if !found {
		atomic.AddInt64(&c.misses, 1)
		var zero V
		return zero, false
	}

	if !c.fresh(entry) {
		c.mu.Lock()
		// only drop it if nobody refreshed it in the meantime
		if cur, ok := c.entries[key]; ok && cur.CachedAt.Equal(entry.CachedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		var zero V
		return zero, false
	}

	atomic.AddInt64(&c.hits, 1)
	return entry.Value, true
}

// Set stores value under key, stamped with the current clock time.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	c.entries[key] = Entry[V]{Value: value, CachedAt: c.clock.Now()}
	c.mu.Unlock()
}

func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[K]Entry[V])
	c.mu.Unlock()
}

func (c *TTLCache[K, V]) TTL() time.Duration {
	return c.ttl
}

func (c *TTLCache[K, V]) Stats() Stats {
	c.mu.RLock()
	size := len(c.entries)
	c.mu.RUnlock()

	return Stats{
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
		Size:   size,
	}
}

func (c *TTLCache[K, V]) fresh(entry Entry[V]) bool {
	return c.clock.Now().Sub(entry.CachedAt) < c.ttl
}
