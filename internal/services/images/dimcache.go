package images

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// dimensionCache remembers decoded pixel dimensions per stored file so
// listings do not re-decode every image on every request. Entries are
// validated against the file's size and modification time rather than a
// TTL; a replaced upload misses and is decoded again.
type dimensionCache struct {
	mu    sync.RWMutex
	items map[string]dimensionEntry

	hits   int64
	misses int64
}

type dimensionEntry struct {
	width   int
	height  int
	size    int64
	modTime time.Time
}

func newDimensionCache() *dimensionCache {
	return &dimensionCache{
		items: make(map[string]dimensionEntry),
	}
}

// get returns the cached dimensions for name if the entry still matches
// the file on disk
func (c *dimensionCache) get(name string, info os.FileInfo) (int, int, bool) {
	c.mu.RLock()
	entry, ok := c.items[name]
	c.mu.RUnlock()

	if !ok || entry.size != info.Size() || !entry.modTime.Equal(info.ModTime()) {
		atomic.AddInt64(&c.misses, 1)
		return 0, 0, false
	}

	atomic.AddInt64(&c.hits, 1)
	return entry.width, entry.height, true
}

// set records the dimensions decoded from the file described by info
func (c *dimensionCache) set(name string, info os.FileInfo, width, height int) {
	c.mu.Lock()
	c.items[name] = dimensionEntry{
		width:   width,
		height:  height,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
	c.mu.Unlock()
}

// forget drops the entry for name
func (c *dimensionCache) forget(name string) {
	c.mu.Lock()
	delete(c.items, name)
	c.mu.Unlock()
}
