package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestInMemoryCache_SetAndGet(t *testing.T) {
	c := NewInMemoryCache(60)

	if err := c.Set("key1", "value1"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, ok := c.Get("key1")
	if !ok {
		t.Fatal("Expected a hit")
	}
	if value != "value1" {
		t.Errorf("Expected %q, got %q", "value1", value)
	}
}

func TestInMemoryCache_Miss(t *testing.T) {
	c := NewInMemoryCache(60)

	if _, ok := c.Get("absent"); ok {
		t.Error("Expected a miss for an absent key")
	}
}

func TestInMemoryCache_Overwrite(t *testing.T) {
	c := NewInMemoryCache(60)

	c.Set("key", "old")
	c.Set("key", "new")

	if value, _ := c.Get("key"); value != "new" {
		t.Errorf("Expected %q, got %q", "new", value)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", c.Len())
	}
}

func TestInMemoryCache_TTLExpiry(t *testing.T) {
	c := NewInMemoryCache(60)
	c.Set("key", "value")

	// Backdate the entry past its TTL.
	c.mu.Lock()
	c.data["key"] = cacheEntry{
		value:   "value",
		written: time.Now().Add(-2 * time.Minute),
	}
	c.mu.Unlock()

	if _, ok := c.Get("key"); ok {
		t.Error("Expected the expired entry to read as a miss")
	}
	if c.Len() != 0 {
		t.Errorf("Expected the expired entry cleaned up, got %d entries", c.Len())
	}
}

func TestInMemoryCache_NoExpiration(t *testing.T) {
	c := NewInMemoryCache(0)
	c.Set("key", "value")

	c.mu.Lock()
	c.data["key"] = cacheEntry{
		value:   "value",
		written: time.Now().Add(-24 * time.Hour),
	}
	c.mu.Unlock()

	if _, ok := c.Get("key"); !ok {
		t.Error("Entries must not expire with TTL disabled")
	}
}

func TestInMemoryCache_Clear(t *testing.T) {
	c := NewInMemoryCache(60)
	c.Set("a", "1")
	c.Set("b", "2")

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d entries", c.Len())
	}
}

func TestInMemoryCache_Entries(t *testing.T) {
	c := NewInMemoryCache(60)
	c.Set("fresh", "kept")
	c.Set("stale", "dropped")

	c.mu.Lock()
	c.data["stale"] = cacheEntry{
		value:   "dropped",
		written: time.Now().Add(-2 * time.Minute),
	}
	c.mu.Unlock()

	entries := c.Entries()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 non-expired entry, got %d", len(entries))
	}
	if entries["fresh"] != "kept" {
		t.Errorf("Expected the fresh entry, got %v", entries)
	}
}

func TestInMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewInMemoryCache(60)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", n)
			c.Set(key, fmt.Sprintf("value%d", n))
		}(i)
		go func(n int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("key%d", n))
		}(i)
	}

	wg.Wait()

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key%d", i)
		if value, ok := c.Get(key); !ok || value != fmt.Sprintf("value%d", i) {
			t.Errorf("Expected %s to survive concurrent access, got (%q, %v)", key, value, ok)
		}
	}
}
