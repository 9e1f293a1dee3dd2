package cache

import (
	"hash/fnv"
	"sync"
)

// DefaultLimit is the soft limit used when New is given a non-positive limit.
const DefaultLimit = 512

// Clearer is implemented by every cache that a font session can invalidate.
type Clearer interface {
	Clear()
}

// Cache is a generic LRU cache with a soft limit.
// When the cache exceeds softLimit, the least recently used quarter is evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	name      string
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter

	hits      uint64
	misses    uint64
	evictions uint64
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// New creates a named cache with the given soft limit.
// The name only shows up in Stats and log output.
func New[K comparable, V any](name string, softLimit int) *Cache[K, V] {
	if softLimit <= 0 {
		softLimit = DefaultLimit
	}
	return &Cache[K, V]{
		name:      name,
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Name returns the cache name.
func (c *Cache[K, V]) Name() string {
	return c.name
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick
	c.hits++
	return entry.value, true
}

// Set stores a value in the cache, evicting old entries past the soft limit.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store(key, value)
}

// GetOrCreate returns the cached value or creates and stores it.
// create runs under the cache lock and must not touch the same cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.hits++
		return entry.value
	}

	c.misses++
	value := create()
	c.store(key, value)
	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Name:      c.name,
		Len:       len(c.entries),
		Limit:     c.softLimit,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// store inserts or replaces key. Caller must hold c.mu.
func (c *Cache[K, V]) store(key K, value V) {
	c.tick++
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		entry.atime = c.tick
		return
	}
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes entries until the cache holds 3/4 of softLimit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Partial selection sort; eviction batches are small.
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		if minIdx != i {
			entries[i], entries[minIdx] = entries[minIdx], entries[i]
		}
		delete(c.entries, entries[i].key)
		c.evictions++
	}
}

// Stats contains cache statistics.
type Stats struct {
	Name      string
	Len       int
	Limit     int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// HashStrings computes an FNV-1a hash over parts, separated by a NUL byte
// so that ("ab", "c") and ("a", "bc") hash differently.
func HashStrings(parts ...string) uint64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p)) // fnv.Write never returns an error
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
