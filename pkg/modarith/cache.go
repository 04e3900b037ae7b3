package modarith

import (
	"encoding/gob"
	"os"
	"sync"
)

// Cache memoizes IsProbablePrime verdicts, keyed by (n, k), and can be
// persisted to and restored from disk so repeat queries across process
// invocations skip recomputation.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]bool
}

type cacheKey struct {
	N int64
	K int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]bool)}
}

// IsProbablePrime returns the cached verdict for (n, k) if present,
// otherwise computes it via the package-level IsProbablePrime and
// stores the result before returning it.
func (c *Cache) IsProbablePrime(n int64, k int) bool {
	if k <= 0 {
		k = DefaultRounds
	}
	key := cacheKey{N: n, K: k}

	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v := IsProbablePrime(n, k)
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
	return v
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save writes the cache's entries to path using gob encoding.
func (c *Cache) Save(path string) error {
	c.mu.RLock()
	snapshot := make(map[cacheKey]bool, len(c.entries))
	for k, v := range c.entries {
		snapshot[k] = v
	}
	c.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(snapshot)
}

// LoadCache restores a Cache previously written by Save.
func LoadCache(path string) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries map[cacheKey]bool
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}
