package pagecache

import (
	"sync"
	"time"
)

type entry struct {
	value   interface{}
	expires time.Time
}

// Cache memoizes page data per path. Admin mutations invalidate the paths
// whose rendered output depends on the changed data; entries also expire on
// their own so an external edit to the sheet shows up within the TTL.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, entries: make(map[string]entry)}
}

func (c *Cache) Get(path string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	if !ok || time.Now().After(e.expires) {
		delete(c.entries, path)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(path string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = entry{value: value, expires: time.Now().Add(c.ttl)}
}

func (c *Cache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range paths {
		delete(c.entries, p)
	}
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
