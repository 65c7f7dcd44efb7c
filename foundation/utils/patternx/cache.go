// File: cache.go
// Title: Compiled Pattern Cache
// Description: Bounded, read-mostly cache of compiled matchers keyed by
//              source, options, engine and timeout. Compile failures are
//              cached as well.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package patternx

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCacheSize is the capacity of DefaultCache
const DefaultCacheSize = 512

type cacheKey struct {
	source  string
	options CompileOptions
	engine  Engine
	timeout time.Duration
}

type cacheEntry struct {
	m        matcher
	err      error
	inserted uint64
}

// Cache holds compiled patterns. Entries are inserted once and never
// modified; when full, the oldest insertion is evicted.
type Cache struct {
	mu      sync.RWMutex
	items   map[cacheKey]*cacheEntry
	maxSize int
	seq     uint64

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports cache usage
type CacheStats struct {
	Size    int
	MaxSize int
	Hits    int64
	Misses  int64
}

// HitRate returns hits as a percentage of lookups
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// NewCache creates a cache holding up to maxSize patterns. A size of zero
// or less disables caching.
func NewCache(maxSize int) *Cache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &Cache{
		items:   make(map[cacheKey]*cacheEntry),
		maxSize: maxSize,
	}
}

var defaultCache atomic.Pointer[Cache]

func init() {
	defaultCache.Store(NewCache(DefaultCacheSize))
}

// DefaultCache returns the cache used by all patterns
func DefaultCache() *Cache {
	return defaultCache.Load()
}

// SetCacheSize replaces the default cache with an empty one of the given
// capacity. Zero disables caching.
func SetCacheSize(maxSize int) {
	defaultCache.Store(NewCache(maxSize))
}

func (c *Cache) compile(key cacheKey) (matcher, error) {
	if c == nil || c.maxSize == 0 {
		return compileMatcher(key.source, key.options, key.engine, key.timeout)
	}

	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return entry.m, entry.err
	}
	c.misses.Add(1)

	m, err := compileMatcher(key.source, key.options, key.engine, key.timeout)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[key]; ok {
		return existing.m, existing.err
	}
	if len(c.items) >= c.maxSize {
		c.evictOldest()
	}
	c.seq++
	c.items[key] = &cacheEntry{m: m, err: err, inserted: c.seq}
	return m, err
}

// evictOldest must be called with the write lock held
func (c *Cache) evictOldest() {
	var oldestKey cacheKey
	var oldest *cacheEntry
	for key, entry := range c.items {
		if oldest == nil || entry.inserted < oldest.inserted {
			oldestKey = key
			oldest = entry
		}
	}
	if oldest != nil {
		delete(c.items, oldestKey)
	}
}

// Clear removes all entries and resets the counters
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[cacheKey]*cacheEntry)
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns a snapshot of the cache counters
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Size:    len(c.items),
		MaxSize: c.maxSize,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
