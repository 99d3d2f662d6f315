// Package cache holds recently computed summaries in memory for a fixed TTL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL store safe for concurrent use. Expired entries are dropped on read.
type Cache[V any] struct {
	items sync.Map // key -> entry[V]
	ttl   time.Duration
	now   func() time.Time
}

// New returns a cache whose entries live for ttl. A ttl <= 0 disables caching.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{ttl: ttl, now: time.Now}
}

// Get returns the cached value for key if it has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	raw, ok := c.items.Load(key)
	if !ok {
		return zero, false
	}
	e := raw.(entry[V])
	if !c.now().Before(e.expiresAt) {
		c.items.Delete(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the cache TTL.
func (c *Cache[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}
	c.items.Store(key, entry[V]{value: value, expiresAt: c.now().Add(c.ttl)})
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.items.Range(func(key, _ any) bool {
		c.items.Delete(key)
		return true
	})
}

// Len counts stored entries, expired or not.
func (c *Cache[V]) Len() int {
	n := 0
	c.items.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Fingerprint derives a cache key from the request parts that change a summary.
func Fingerprint(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}
