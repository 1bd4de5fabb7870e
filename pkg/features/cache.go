package features

import (
	"container/list"
	"sync"
	"time"
)

type cacheEntry struct {
	key     string
	value   interface{}
	addedAt time.Time
	element *list.Element
}

// Cache is a small LRU cache with optional TTL. The catalog passes one in
// explicitly instead of relying on process-wide state, so hosts embedding
// the library control its lifetime.
type Cache struct {
	mu      sync.RWMutex
	maxSize int
	ttl     time.Duration
	entries map[string]*cacheEntry
	lru     *list.List
}

// NewCache creates a cache holding at most maxSize entries. A zero ttl
// disables expiry.
func NewCache(maxSize int, ttl time.Duration) *Cache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &Cache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		lru:     list.New(),
	}
}

// Get returns the cached value for key, expiring stale entries on read.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(entry.addedAt) > c.ttl {
		c.removeLocked(entry)
		return nil, false
	}

	c.lru.MoveToFront(entry.element)
	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.value = value
		entry.addedAt = time.Now()
		c.lru.MoveToFront(entry.element)
		return
	}

	entry := &cacheEntry{key: key, value: value, addedAt: time.Now()}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry

	if len(c.entries) > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeLocked(oldest.Value.(*cacheEntry))
		}
	}
}

// Delete drops a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.removeLocked(entry)
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) removeLocked(entry *cacheEntry) {
	c.lru.Remove(entry.element)
	delete(c.entries, entry.key)
}
