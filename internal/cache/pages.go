// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"time"
)

// pageKeyPrefix namespaces rendered-page entries within the shared backend.
const pageKeyPrefix = "page:"

// PageCache stores rendered page HTML by path on top of a Cacher
// backend, so a Redis deployment shares rendered output across
// instances. Entries are invalidated whenever the path is saved.
type PageCache struct {
	backend Cacher
	ttl     time.Duration
}

// NewPageCache creates a page cache over the given backend.
func NewPageCache(backend Cacher, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &PageCache{backend: backend, ttl: ttl}
}

// Get returns the cached HTML for a path, or ok=false on miss.
// Backend failures degrade to a miss; the caller re-renders.
func (c *PageCache) Get(ctx context.Context, path string) (string, bool) {
	val, err := c.backend.Get(ctx, pageKeyPrefix+path)
	if err != nil {
		return "", false
	}
	return string(val), true
}

// Set stores the rendered HTML for a path.
func (c *PageCache) Set(ctx context.Context, path, html string) error {
	return c.backend.Set(ctx, pageKeyPrefix+path, []byte(html), c.ttl)
}

// Invalidate drops the cached render for a path. Called on every save
// so the next request re-renders from the stored document.
func (c *PageCache) Invalidate(ctx context.Context, path string) error {
	if err := c.backend.Delete(ctx, pageKeyPrefix+path); err != nil && !errors.Is(err, ErrCacheMiss) {
		return err
	}
	return nil
}

// Clear drops all cached renders.
func (c *PageCache) Clear(ctx context.Context) error {
	return c.backend.DeleteByPrefix(ctx, pageKeyPrefix)
}

// Stats returns backend statistics when the backend provides them.
func (c *PageCache) Stats() Stats {
	if sp, ok := c.backend.(StatsProvider); ok {
		return sp.Stats()
	}
	return Stats{}
}
