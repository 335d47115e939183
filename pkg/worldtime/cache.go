package worldtime

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Clock returns the current instant. Tests pin it.
type Clock func() time.Time

type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// Cache keeps raw API replies for a fixed TTL measured on its own clock.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, cacheEntry]
	ttl     time.Duration
	clock   Clock
}

// NewCache builds a size bounded cache. Zero values take the package defaults.
func NewCache(size int, ttl time.Duration, clock Clock) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = time.Now
	}

	// lru.New only fails on a non-positive size.
	entries, _ := lru.New[string, cacheEntry](size)
	return &Cache{entries: entries, ttl: ttl, clock: clock}
}

// Get returns the body stored under key and how long ago it was fetched.
func (c *Cache) Get(key string) ([]byte, time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(key)
	if !ok {
		return nil, 0, false
	}
	age := c.clock().Sub(e.fetchedAt)
	if age >= c.ttl {
		c.entries.Remove(key)
		return nil, 0, false
	}
	return e.body, age, true
}

// Set stores body under key, stamped with the cache clock.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key, cacheEntry{body: body, fetchedAt: c.clock()})
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
