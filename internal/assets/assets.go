// Package assets handles game asset loading and caching.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/schoolopoly/client/internal/engine/texture"
)

// Manager loads files from the assets directory. Raw file bytes are
// cached; decoded images are not.
type Manager struct {
	root  string
	cache *Cache
}

// NewManager creates a manager rooted at the assets directory.
func NewManager(root string) *Manager {
	return &Manager{
		root:  root,
		cache: NewCache(),
	}
}

// Path resolves a relative asset path against the assets root.
func (m *Manager) Path(rel string) string {
	return filepath.Join(m.root, rel)
}

// Load reads an asset file, serving repeated loads from the cache.
func (m *Manager) Load(rel string) ([]byte, error) {
	if data, ok := m.cache.Get(rel); ok {
		return data, nil
	}

	data, err := os.ReadFile(m.Path(rel))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", rel, err)
	}
	m.cache.Set(rel, data)
	return data, nil
}

// Image loads and decodes an asset image into RGBA.
func (m *Manager) Image(rel string) (*image.RGBA, error) {
	data, err := m.Load(rel)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding asset %s: %w", rel, err)
	}
	return texture.ToRGBA(img), nil
}

// Close drops the cache.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
