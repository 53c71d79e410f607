package folio

import (
	"sync"
	"time"
)

// ContentCache is an in-memory TTL cache over the public read paths for
// blogs and projects, the two collections every visitor fetches. Admin
// reads bypass it; mutations invalidate the touched collection.
type ContentCache struct {
	mu       sync.RWMutex
	blogs    []Blog
	projects []Project

	blogsFetched    time.Time
	projectsFetched time.Time

	ttl   time.Duration
	store *Store
}

// NewContentCache creates a ContentCache backed by the given Store.
func NewContentCache(s *Store, ttl time.Duration) *ContentCache {
	return &ContentCache{store: s, ttl: ttl}
}

// InvalidateBlogs clears the cached blog list so the next read reloads.
func (c *ContentCache) InvalidateBlogs() {
	c.mu.Lock()
	c.blogs = nil
	c.mu.Unlock()
}

// InvalidateProjects clears the cached project list.
func (c *ContentCache) InvalidateProjects() {
	c.mu.Lock()
	c.projects = nil
	c.mu.Unlock()
}

// ListBlogs returns the cached blog list, reloading from the store when
// stale. It tries a read lock first; only takes a write lock on reload.
func (c *ContentCache) ListBlogs() ([]Blog, error) {
	c.mu.RLock()
	if c.blogs != nil && time.Since(c.blogsFetched) < c.ttl {
		blogs := c.blogs
		c.mu.RUnlock()
		return blogs, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blogs != nil && time.Since(c.blogsFetched) < c.ttl {
		return c.blogs, nil
	}
	blogs, err := c.store.ListBlogs()
	if err != nil {
		return nil, err
	}
	c.blogs = blogs
	c.blogsFetched = time.Now()
	return blogs, nil
}

// ListProjects returns the cached project list, reloading when stale.
func (c *ContentCache) ListProjects() ([]Project, error) {
	c.mu.RLock()
	if c.projects != nil && time.Since(c.projectsFetched) < c.ttl {
		projects := c.projects
		c.mu.RUnlock()
		return projects, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.projects != nil && time.Since(c.projectsFetched) < c.ttl {
		return c.projects, nil
	}
	projects, err := c.store.ListProjects()
	if err != nil {
		return nil, err
	}
	c.projects = projects
	c.projectsFetched = time.Now()
	return projects, nil
}
