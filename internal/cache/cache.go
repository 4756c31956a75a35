// Package cache memoizes formatted HTTP-dates by Unix second on top of a
// ristretto cache.
package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultSize is the number of seconds kept when New is given a size <= 0.
const DefaultSize = 1024

// Cache maps a Unix second to its formatted date. Every entry costs 1, so
// the size passed to New is an entry count. Safe for concurrent use.
type Cache struct {
	c *ristretto.Cache[int64, string]
}

// New creates a cache holding about size entries.
func New(size int64) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := ristretto.NewCache(&ristretto.Config[int64, string]{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
		Metrics:     true,
		Cost: func(string) int64 {
			return 1
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache{c: c}, nil
}

// Get returns the date stored for sec.
func (c *Cache) Get(sec int64) (string, bool) {
	return c.c.Get(sec)
}

// Set stores the date for sec. Writes are buffered, so a Get right after a
// Set may miss; call Wait to flush.
func (c *Cache) Set(sec int64, date string) bool {
	return c.c.Set(sec, date, 1)
}

// Wait blocks until buffered writes are applied.
func (c *Cache) Wait() {
	c.c.Wait()
}

// Metrics reports cache statistics as name/value pairs.
func (c *Cache) Metrics() map[string]interface{} {
	m := c.c.Metrics
	if m == nil {
		return nil
	}
	return map[string]interface{}{
		"hits":         m.Hits(),
		"misses":       m.Misses(),
		"ratio":        fmt.Sprintf("%.2f", m.Ratio()),
		"keys_added":   m.KeysAdded(),
		"keys_evicted": m.KeysEvicted(),
		"sets_dropped": m.SetsDropped(),
	}
}

// Close stops the cache's goroutines. The cache must not be used afterwards.
func (c *Cache) Close() {
	c.c.Close()
}
