package web

// cache.go tracks a version per dashboard listing route. Mutations bump the
// owning route's version; listing responses derive their ETag from it, so a
// client re-fetches a view exactly when something under it changed.

import (
	"fmt"
	"sync"
)

type viewCache struct {
	mu       sync.Mutex
	versions map[string]uint64
}

func newViewCache() *viewCache {
	return &viewCache{versions: make(map[string]uint64)}
}

// Invalidate bumps the version for a route.
func (c *viewCache) Invalidate(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[route]++
}

// ETag returns the current validator for a route.
func (c *viewCache) ETag(route string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf(`W/"%s-v%d"`, route, c.versions[route])
}
