package cache

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	// ErrEmptyKey is returned when setting an entry with an empty key
	ErrEmptyKey = errors.New("cache key must not be empty")
	// ErrInvalidTTL is returned when setting an entry with a non-positive ttl
	ErrInvalidTTL = errors.New("cache ttl must be positive")
)

// Cache is an in-memory key/value store with per-entry expiry
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// Set stores value under key, replacing any existing entry and restarting its expiry
	Set(key string, value interface{}, ttl time.Duration) error
	// Get returns the value if present and not expired
	Get(key string) (interface{}, bool)
	// Delete removes key and reports whether an entry existed
	Delete(key string) bool
	// InvalidateByPrefix removes every key starting with prefix and returns how many were removed
	InvalidateByPrefix(prefix string) int
	// Clear removes all entries
	Clear()
	// Stats returns the current size and keys
	Stats() Stats
}

// Stats is a snapshot of the cache contents
type Stats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

type entry struct {
	value      interface{}
	insertedAt time.Time
	ttl        time.Duration
	timer      *time.Timer
}

func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.insertedAt) >= e.ttl
}

type ttlCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// New creates an empty TTL cache. Expired entries are removed by a timer and
// also treated as misses on read, so a lagging timer never serves stale data.
func New() Cache {
	return &ttlCache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (c *ttlCache) Set(key string, value interface{}, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if old, ok := c.entries[key]; ok {
		old.timer.Stop()
	}

	e := &entry{
		value:      value,
		insertedAt: c.now(),
		ttl:        ttl,
	}
	e.timer = time.AfterFunc(ttl, func() {
		c.evict(key, e)
	})
	c.entries[key] = e

	return nil
}

// evict removes key only if it still maps to e; a newer Set owns the slot otherwise
func (c *ttlCache) evict(key string, e *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if current, ok := c.entries[key]; ok && current == e {
		delete(c.entries, key)
	}
}

func (c *ttlCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		e.timer.Stop()
		delete(c.entries, key)
		return nil, false
	}

	return e.value, true
}

func (c *ttlCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(c.entries, key)

	return true
}

func (c *ttlCache) InvalidateByPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			e.timer.Stop()
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		e.timer.Stop()
	}
	c.entries = make(map[string]*entry)
}

func (c *ttlCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	keys := make([]string, 0, len(c.entries))
	for key, e := range c.entries {
		if !e.expired(now) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	return Stats{Size: len(keys), Keys: keys}
}

// BuildKey joins a prefix and parts with ':' (e.g. "balances:0.0.123:25")
func BuildKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
