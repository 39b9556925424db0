// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/olegiv/opages-go/internal/model"
)

// DefaultSessionTTL bounds how long a validated session is trusted
// without re-checking the identity provider.
const DefaultSessionTTL = 5 * time.Minute

// TokenDigest returns the cache key for a bearer token. Tokens are
// never stored or logged verbatim; a dump of cache keys must not yield
// replayable credentials.
func TokenDigest(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:16])
}

// sessionEntry holds a cached session with its local expiry.
type sessionEntry struct {
	session   *model.Session
	expiresAt time.Time
}

// SessionCache is a TTL cache of validated identity-provider sessions,
// keyed by token digest. Expired entries are evicted lazily on read and
// in bulk by Sweep. Safe for concurrent use.
type SessionCache struct {
	data sync.Map
	ttl  time.Duration

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewSessionCache creates a session cache with the given TTL.
// A non-positive TTL falls back to DefaultSessionTTL.
func NewSessionCache(ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionCache{ttl: ttl}
}

// TTL returns the configured entry lifetime.
func (c *SessionCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached session for a token, or nil on miss. An entry
// past its local TTL, or whose provider-side expiry has passed, is
// evicted and treated as a miss.
func (c *SessionCache) Get(token string) *model.Session {
	key := TokenDigest(token)

	val, ok := c.data.Load(key)
	if !ok {
		c.misses.Add(1)
		return nil
	}

	entry := val.(*sessionEntry)
	if time.Now().After(entry.expiresAt) || entry.session.Expired() {
		c.data.Delete(key)
		c.misses.Add(1)
		return nil
	}

	c.hits.Add(1)
	return entry.session
}

// Set caches a validated session for the token.
func (c *SessionCache) Set(token string, session *model.Session) {
	c.data.Store(TokenDigest(token), &sessionEntry{
		session:   session,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.sets.Add(1)
}

// Invalidate drops the cached session for a token. Used on sign-out so
// revocation takes effect immediately rather than at TTL expiry.
func (c *SessionCache) Invalidate(token string) {
	c.data.Delete(TokenDigest(token))
}

// InvalidateAll drops every cached session.
func (c *SessionCache) InvalidateAll() {
	c.data.Range(func(key, _ any) bool {
		c.data.Delete(key)
		return true
	})
}

// Sweep removes all expired entries and returns how many were dropped.
// Bounds memory for tokens that are never read again.
func (c *SessionCache) Sweep() int {
	now := time.Now()
	removed := 0
	c.data.Range(func(key, value any) bool {
		entry := value.(*sessionEntry)
		if now.After(entry.expiresAt) || entry.session.Expired() {
			c.data.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len returns the number of cached entries, including not-yet-swept
// expired ones.
func (c *SessionCache) Len() int {
	count := 0
	c.data.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// Stats returns current cache statistics.
func (c *SessionCache) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses

	var hitRate float64
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}

	return Stats{
		Hits:    hits,
		Misses:  misses,
		Sets:    c.sets.Load(),
		Items:   c.Len(),
		HitRate: hitRate,
	}
}

// ResetStats resets the cache statistics.
func (c *SessionCache) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.sets.Store(0)
}
