package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/marketlens/marketlens/internal/model"
)

// TTLCache is an in-process cache with a fixed time-to-live per entry.
// Caching lives in the serving layer, the engines themselves are stateless.
type TTLCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry
	now   func() time.Time
}

type entry struct {
	value   interface{}
	expires time.Time
}

// New creates a cache with the given time-to-live.
func New(ttl time.Duration) *TTLCache {
	return &TTLCache{
		ttl:   ttl,
		items: make(map[string]entry),
		now:   time.Now,
	}
}

// Key builds the cache key for a forecast request.
func Key(ticker string, m model.Model, horizon int) string {
	return fmt.Sprintf("%s_%s_%d", ticker, m, horizon)
}

// Get returns the cached value if present and not expired.
func (c *TTLCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Put stores the value under the key for the cache time-to-live.
func (c *TTLCache) Put(key string, value interface{}) {
	c.mu.Lock()
	c.items[key] = entry{value: value, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Evict removes expired entries.
func (c *TTLCache) Evict() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	removed := 0
	for k, e := range c.items {
		if now.After(e.expires) {
			delete(c.items, k)
			removed++
		}
	}
	return removed
}

// Size returns the number of stored entries, expired ones included.
func (c *TTLCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
