package asset

import (
	"sync/atomic"

	"github.com/ka4ep/lexical/core/cache"
	"github.com/ka4ep/lexical/core/line"
)

// DefaultCacheSize is the number of lookups a Cache keeps by default.
const DefaultCacheSize = 4096

type cached struct {
	line *line.Part
	ok   bool
}

// Cache keeps recent lookups of another asset in an LRU. Misses are cached
// too, so call Purge after the source changes. Safe for concurrent use when
// the source is.
type Cache struct {
	source  line.Asset
	cmp     *line.Comparer
	entries *cache.LRUCache[string, cached]

	evictions atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheComparer sets the comparer lookups are keyed with.
func WithCacheComparer(cmp *line.Comparer) CacheOption {
	return func(c *Cache) {
		if cmp != nil {
			c.cmp = cmp
		}
	}
}

// WithCacheSize sets the number of lookups kept.
func WithCacheSize(n int) CacheOption {
	return func(c *Cache) {
		if n > 0 {
			c.entries = cache.NewLRUCache[string, cached](n)
		}
	}
}

// NewCache wraps source.
func NewCache(source line.Asset, opts ...CacheOption) *Cache {
	c := &Cache{
		source:  source,
		cmp:     line.DefaultComparer(),
		entries: cache.NewLRUCache[string, cached](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries.SetEvictCallback(func(string, cached) { c.evictions.Add(1) })
	return c
}

// GetLine implements line.Asset.
func (c *Cache) GetLine(key *line.Part) (*line.Part, bool) {
	fp := c.cmp.Fingerprint(key)
	if e, ok := c.entries.Get(fp); ok {
		return e.line, e.ok
	}
	l, ok := c.source.GetLine(key)
	c.entries.Put(fp, cached{line: l, ok: ok})
	return l, ok
}

// Forget drops the cached lookup of key.
func (c *Cache) Forget(key *line.Part) {
	c.entries.Remove(c.cmp.Fingerprint(key))
}

// Purge drops every cached lookup.
func (c *Cache) Purge() {
	c.entries.Clear()
}

// Len returns the number of cached lookups.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Evictions returns how many lookups were dropped to make room for newer
// ones. Forget and Purge do not count.
func (c *Cache) Evictions() int64 {
	return c.evictions.Load()
}
