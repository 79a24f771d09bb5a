package texture

import (
	"fmt"
	"image"
	"os"
	"sync"
)

// Resolver resolves a texture name to a decoded NRGBA image.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache shared by render workers.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates a texture cache. With a non-nil index, names are texture
// stems looked up in the index; an existing file path is used as is. With a
// nil index every name is a file path.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found or
// undecodable; failures are cached too.
func (c *Cache) Resolve(name string) *image.NRGBA {
	img, _ := c.Load(name)
	return img
}

// Load is Resolve with the load error reported.
func (c *Cache) Load(name string) (*image.NRGBA, error) {
	path, ok := c.path(name)
	if !ok {
		return nil, fmt.Errorf("texture: %s: %w", name, os.ErrNotExist)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img, err
}

func (c *Cache) path(name string) (string, bool) {
	if c.index == nil {
		return name, true
	}
	if Supported(name) {
		if _, err := os.Stat(name); err == nil {
			return name, true
		}
	}
	return c.index.ResolvePath(name)
}

// Len returns the number of cached paths, failures included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
