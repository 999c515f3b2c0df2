// Package memcache provides the bundled MemoryCache component: a small
// in-process key/value store with per-entry expiry.
package memcache

import (
	"sync"
	"time"

	"github.com/vk/corekit/internal/component"
	"github.com/vk/corekit/internal/registry"
)

// MemoryCache stores values in memory with an optional default TTL.
type MemoryCache struct {
	// TTL is the default lifetime of an entry in seconds. Zero means
	// entries never expire.
	TTL int `prop:"ttl"`

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value   any
	expires time.Time
}

// New is the compiled factory for MemoryCache.
func New(...any) any {
	return &MemoryCache{entries: make(map[string]entry)}
}

// Set stores a value under key using the cache's default TTL.
func (c *MemoryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := entry{value: value}
	if c.TTL > 0 {
		e.expires = time.Now().Add(time.Duration(c.TTL) * time.Second)
	}
	c.entries[key] = e
}

// Get returns the value stored under key, if present and unexpired.
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Dispose drops all entries.
func (c *MemoryCache) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the compiled factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("MemoryCache", component.Factory(New))
}
