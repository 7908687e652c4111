package site

import (
	"database/sql"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested page does not exist.
var ErrNotFound = sql.ErrNoRows

// PageCache is an in-memory cache of published pages with TTL.
type PageCache struct {
	mu      sync.RWMutex
	pages   []PageRecord
	byPath  map[string]PageRecord
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPageCache creates a PageCache backed by the given Store.
func NewPageCache(s *Store, ttl time.Duration) *PageCache {
	return &PageCache{store: s, ttl: ttl}
}

func (c *PageCache) valid() bool {
	return c.byPath != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = nil
	c.byPath = nil
	c.mu.Unlock()
}

func (c *PageCache) load() error {
	if c.valid() {
		return nil
	}
	pages, err := c.store.ListPages()
	if err != nil {
		return err
	}
	byPath := make(map[string]PageRecord, len(pages))
	for _, p := range pages {
		byPath[p.Path] = p
	}
	c.pages = pages
	c.byPath = byPath
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns the cached snapshot after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PageCache) ensureLoaded() ([]PageRecord, map[string]PageRecord, error) {
	c.mu.RLock()
	if c.valid() {
		pages, byPath := c.pages, c.byPath
		c.mu.RUnlock()
		return pages, byPath, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.pages, c.byPath, nil
}

// ListPages returns published pages ordered by path.
func (c *PageCache) ListPages() ([]PageRecord, error) {
	pages, _, err := c.ensureLoaded()
	return pages, err
}

// GetPage returns a single published page by path from the cache.
func (c *PageCache) GetPage(path string) (PageRecord, error) {
	_, byPath, err := c.ensureLoaded()
	if err != nil {
		return PageRecord{}, err
	}
	p, ok := byPath[path]
	if !ok {
		return PageRecord{}, ErrNotFound
	}
	return p, nil
}
