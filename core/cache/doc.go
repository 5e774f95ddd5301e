// Package cache provides a generic, concurrency safe LRU cache.
//
//	c := cache.NewLRUCache[string, *line.Part](1024)
//	c.SetEvictCallback(func(key string, _ *line.Part) {
//		log.Debug("evicted", "key", key)
//	})
//	c.Put(fp, l)
//	if l, ok := c.Get(fp); ok {
//		...
//	}
//
// Get, Put and Remove are O(1): entries live in a map and a doubly linked
// list ordered by use. The asset package uses it to keep recent lookups of
// remote assets in memory.
package cache
