package service

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
)

const cachePrefix = "weather:"

// Defaults match the upstream rate-limit budget: ten minutes, a thousand cities
const (
	DefaultCacheTTL        = 600 * time.Second
	DefaultCacheMaxEntries = 1000
)

type cacheEntry struct {
	result    *ProviderResult
	expiresAt time.Time
}

// Cache keeps provider results per city for a fixed TTL
type Cache struct {
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	mu         sync.RWMutex
	now        func() time.Time
}

// NewCache creates a provider result cache
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &Cache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// CacheKey normalizes a city name so that "Paris", " paris " and "PARIS" share an entry
func CacheKey(city string) string {
	// Casers are stateful, so one per call
	return cachePrefix + cases.Fold().String(strings.TrimSpace(city))
}

// Get returns the cached result for key if it has not expired
func (c *Cache) Get(key string) (*ProviderResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Set stores result under key, evicting expired entries first and then the
// entry closest to expiry when the cache is full
func (c *Cache) Set(key string, result *ProviderResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		for k, e := range c.entries {
			if !now.Before(e.expiresAt) {
				delete(c.entries, k)
			}
		}
		if len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
	}

	c.entries[key] = cacheEntry{result: result, expiresAt: now.Add(c.ttl)}
}

// Len returns the number of stored entries, expired or not
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey, oldest = k, e.expiresAt
		}
	}
	delete(c.entries, oldestKey)
}
