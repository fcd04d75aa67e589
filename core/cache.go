package core

import (
	"sync"
	"time"
)

// RenderCache keeps rendered gallery fragments keyed by slug. Entries are
// evicted oldest-first when the cache is full; the cache tool can wipe it.
type RenderCache struct {
	entries map[string]*cacheEntry
	order   []string
	mu      sync.RWMutex
	max     int

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	fragment string
	storedAt time.Time
}

// CacheStats is a point-in-time snapshot of cache usage.
type CacheStats struct {
	Entries int    `json:"entries"`
	Max     int    `json:"max"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// NewRenderCache builds a cache holding at most max entries (minimum 1).
func NewRenderCache(max int) *RenderCache {
	if max < 1 {
		max = 1
	}
	return &RenderCache{
		entries: make(map[string]*cacheEntry),
		max:     max,
	}
}

// Get returns the cached fragment for slug, if present.
func (c *RenderCache) Get(slug string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[slug]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	return entry.fragment, true
}

// Put stores a rendered fragment for slug, evicting the oldest entry when full.
func (c *RenderCache) Put(slug, fragment string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[slug]; !exists {
		if len(c.entries) >= c.max && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, slug)
	}

	c.entries[slug] = &cacheEntry{fragment: fragment, storedAt: time.Now()}
}

// Invalidate drops a single slug from the cache.
func (c *RenderCache) Invalidate(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[slug]; !ok {
		return
	}
	delete(c.entries, slug)
	for i, s := range c.order {
		if s == slug {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear wipes the cache and returns how many entries were dropped.
func (c *RenderCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
	return n
}

// Stats returns a snapshot of cache usage.
func (c *RenderCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Entries: len(c.entries),
		Max:     c.max,
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Len returns the current number of cached entries.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
