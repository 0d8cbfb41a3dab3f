package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// PageCache is a process-local LRU with per-entry TTL, used for hot listing
// pages. Entries are best effort; writes invalidate the affected keys.
type PageCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *PageCache
	cacheOnce     sync.Once
)

// GetCache returns the shared cache instance.
func GetCache() *PageCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &PageCache{lruCache: l}
	})
	return cacheInstance
}

// Set stores data under key for the given TTL.
func (c *PageCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{Data: data, ExpiresAt: time.Now().Add(ttl)})
}

// Get returns the cached data, or nil when missing or expired.
func (c *PageCache) Get(key string) interface{} {
	item, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(item.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return item.Data
}

// Delete drops a key.
func (c *PageCache) Delete(key string) {
	c.lruCache.Remove(key)
}
