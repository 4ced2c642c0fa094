package preview

import (
	"sort"
	"strings"
	"sync"
)

// Cache memoizes preview lookup results by (trackName, artistName) for the
// lifetime of a session. A cached empty string means the lookup completed
// and found no preview; that is distinct from an absent key, which means no
// lookup has happened yet.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// CacheStats summarizes the cache contents.
type CacheStats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// NewCache creates an empty preview cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Key builds the cache key for a track/artist pair.
func Key(trackName, artistName string) string {
	if strings.TrimSpace(artistName) == "" {
		artistName = "unknown"
	}
	return trackName + "|" + artistName
}

// Lookup returns the cached preview URL for the pair. cached reports whether
// a lookup result exists at all; the URL may be empty for a confirmed miss.
func (c *Cache) Lookup(trackName, artistName string) (url string, cached bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, cached = c.entries[Key(trackName, artistName)]
	return url, cached
}

// Store records a lookup result. Idempotent upsert; storing "" marks a
// confirmed miss.
func (c *Cache) Store(trackName, artistName, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(trackName, artistName)] = url
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

// Stats returns the current size and sorted key list.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return CacheStats{Size: len(c.entries), Keys: keys}
}
