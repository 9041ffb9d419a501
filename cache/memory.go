package cache

import (
	"sync"
	"time"
)

// cacheEntry pairs a serialized summary with the time it was computed.
type cacheEntry struct {
	value   string
	written time.Time
}

// InMemoryCache is a process-local summary cache with an optional TTL. Keys
// are content-hash pairs, so an entry can never go stale; the TTL exists to
// bound memory in long-lived processes, not to ensure freshness. Use
// RedisCache to share summaries across processes.
type InMemoryCache struct {
	data map[string]cacheEntry
	mu   sync.RWMutex
	ttl  time.Duration
}

// NewInMemoryCache creates an in-memory cache whose entries expire
// ttlSeconds after being written. Zero or negative disables expiration.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &InMemoryCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
	}
}

// expired reports whether an entry is past its TTL as of now.
func (c *InMemoryCache) expired(entry cacheEntry, now time.Time) bool {
	return c.ttl > 0 && now.Sub(entry.written) > c.ttl
}

// Get returns the cached summary for key. An expired entry reads as a miss
// and is removed on the way out.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if c.expired(entry, time.Now()) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return "", false
	}

	return entry.value, true
}

// Set stores a summary under key, resetting its TTL.
func (c *InMemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheEntry{
		value:   value,
		written: time.Now(),
	}
	return nil
}

// Len returns the number of stored entries, including ones that have
// expired but not yet been read.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear drops every entry.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]cacheEntry)
}

// Entries returns the live entries as key-value pairs, for export. Expiry is
// judged against a single snapshot of the clock so the whole export is
// consistent.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(c.data))
	now := time.Now()
	for key, entry := range c.data {
		if c.expired(entry, now) {
			continue
		}
		result[key] = entry.value
	}
	return result
}

// Verify InMemoryCache implements DiffCache
var _ DiffCache = (*InMemoryCache)(nil)
