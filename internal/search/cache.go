package search

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a built index stays valid.
const DefaultTTL = 5 * time.Minute

// Cache holds at most one built index: the one for the most recently
// queried vault path. It expires by TTL, by vault-path mismatch, or by an
// explicit Invalidate after anything mutates vault content.
//
// Concurrent GetOrBuild calls for the same vault share a single in-flight
// build instead of building twice. Two separate processes still build
// independently; there is no cross-process coordination.
type Cache struct {
	ttl   time.Duration
	now   func() time.Time
	build func(string) (Index, error)

	group singleflight.Group

	mu      sync.Mutex
	path    string
	index   Index
	builtAt time.Time
}

// NewCache creates a cache around a build function. A zero ttl means
// DefaultTTL.
func NewCache(ttl time.Duration, build func(string) (Index, error)) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if build == nil {
		build = Build
	}
	return &Cache{
		ttl:   ttl,
		now:   time.Now,
		build: build,
	}
}

// Get returns the cached index for vaultPath, or nil if the slot holds a
// different vault or has expired.
func (c *Cache) Get(vaultPath string) Index {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil || c.path != vaultPath {
		return nil
	}
	if c.now().Sub(c.builtAt) >= c.ttl {
		return nil
	}
	return c.index
}

// GetOrBuild returns the cached index when valid, otherwise builds it,
// stores it with a fresh timestamp, and returns it.
func (c *Cache) GetOrBuild(vaultPath string) (Index, error) {
	if index := c.Get(vaultPath); index != nil {
		return index, nil
	}

	v, err, _ := c.group.Do(vaultPath, func() (interface{}, error) {
		// A build that finished while we queued serves this call too.
		if index := c.Get(vaultPath); index != nil {
			return index, nil
		}

		index, err := c.build(vaultPath)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.path = vaultPath
		c.index = index
		c.builtAt = c.now()
		c.mu.Unlock()

		return index, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Index), nil
}

// Invalidate clears the cache slot unconditionally. Call it after any
// operation known to change vault content (capture, import, add).
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.path = ""
	c.index = nil
	c.builtAt = time.Time{}
}
