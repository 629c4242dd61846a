package catalog

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/caremixer/backend/internal/infrastructure/monitoring"
)

// FetchFunc resolves a key against the authoritative catalog on a miss.
type FetchFunc func(ctx context.Context) (Entry, error)

// Cache is a cache-aside store for resolved entries. Keys are lowercased so
// lookups are case-insensitive. Entries live until process exit: no
// eviction, no size bound, no expiry. That boundary is accepted for this
// catalog's working set; the Get/Put contract is eviction-policy-agnostic
// so a bounded policy can be added without touching callers.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	group   singleflight.Group
	metrics *monitoring.Metrics
}

// NewCache creates an empty entry cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// WithMetrics attaches a metrics collector.
func (c *Cache) WithMetrics(m *monitoring.Metrics) *Cache {
	c.metrics = m
	return c
}

// Get returns the cached entry for key, if present.
func (c *Cache) Get(key string) (Entry, bool) {
	key = normalize(key)
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	return entry, ok
}

// Put stores an entry under key, overwriting any previous value.
func (c *Cache) Put(key string, entry Entry) {
	key = normalize(key)
	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrFetch returns the cached entry for key, resolving a miss through
// fetch. Concurrent misses for the same key collapse into one fetch; every
// waiter receives the winner's result. A failed fetch is never cached, so a
// later call for the same key retries the remote catalog.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (Entry, error) {
	key = normalize(key)

	if entry, ok := c.Get(key); ok {
		c.recordHit()
		return entry, nil
	}
	c.recordMiss()

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent flight may have populated the slot already.
		if entry, ok := c.Get(key); ok {
			return entry, nil
		}
		entry, err := fetch(ctx)
		if err != nil {
			return Entry{}, err
		}
		c.Put(key, entry)
		return entry, nil
	})
	if err != nil {
		return Entry{}, err
	}
	return v.(Entry), nil
}

func (c *Cache) recordHit() {
	if c.metrics != nil {
		c.metrics.RecordCacheHit("entries")
	}
}

func (c *Cache) recordMiss() {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss("entries")
	}
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
