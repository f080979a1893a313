package geocode

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Cache is a TTL cache of resolved locations, keyed by [CacheKey].
//
// Successful lookups and failures have separate lifetimes so that a transient
// outage is retried soon while a resolved address is reused for long. Expired
// entries are dropped lazily on [Cache.Get] and in bulk by [Cache.Purge].
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	successTTL time.Duration
	failureTTL time.Duration

	now func() time.Time
}

// NewCache creates an empty cache with the given lifetimes.
func NewCache(successTTL, failureTTL time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		successTTL: successTTL,
		failureTTL: failureTTL,
		now:        time.Now,
	}
}

// Get returns the live value stored under key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false
	}

	return e.value, true
}

// SetSuccess stores a resolved location for the success TTL.
func (c *Cache) SetSuccess(key, value string) {
	c.set(key, value, c.successTTL)
}

// SetFailure stores [UnknownLocation] for the failure TTL.
func (c *Cache) SetFailure(key string) {
	c.set(key, UnknownLocation, c.failureTTL)
}

func (c *Cache) set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: c.now().Add(ttl)}
}

// Purge removes every expired entry and reports how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
