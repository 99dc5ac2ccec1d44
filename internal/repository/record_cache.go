package repository

import (
	"sync"
	"time"
)

// cachedFile is the raw content of a record file together with the stat
// values it was read under.
type cachedFile struct {
	modTime time.Time
	size    int64
	data    []byte
}

// RecordCache is a thread-safe in-memory cache of record files
type RecordCache struct {
	mu    sync.RWMutex
	cache map[string]cachedFile // file path -> content
}

// NewRecordCache creates a new record cache instance
func NewRecordCache() *RecordCache {
	return &RecordCache{
		cache: make(map[string]cachedFile),
	}
}

// Get returns the cached content of path if it was stored for the same
// modification time and size.
func (c *RecordCache) Get(path string, modTime time.Time, size int64) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, found := c.cache[path]
	if !found || f.size != size || !f.modTime.Equal(modTime) {
		return nil, false
	}
	return f.data, true
}

func (c *RecordCache) Set(path string, modTime time.Time, size int64, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[path] = cachedFile{modTime: modTime, size: size, data: data}
}

// Delete removes a single file from cache
func (c *RecordCache) Delete(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, path)
}

// Clear removes all entries from cache
func (c *RecordCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cachedFile)
}

// Size returns the number of cached entries
func (c *RecordCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}
