package texture

import (
	"sync"

	"vmod-renderer/internal/vmod"
)

// Cache is a concurrency-safe image cache keyed by file path. Failures are
// cached too, so a missing file is only probed once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img vmod.Image
	err error
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Load returns the cached image for path, reading it from disk on first use.
func (c *Cache) Load(path string) (vmod.Image, error) {
	// Fast path: read lock.
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.img, e.err
	}
	c.mu.RUnlock()

	img, err := Load(path)

	// Write lock with double-check.
	c.mu.Lock()
	if e, ok := c.items[path]; ok {
		c.mu.Unlock()
		return e.img, e.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	return img, err
}
