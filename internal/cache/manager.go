// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"
	"time"
)

// NamedStats holds statistics for a specific cache.
type NamedStats struct {
	Name  string `json:"name"`
	Stats Stats  `json:"stats"`
}

// Manager owns all cache instances and provides a unified interface.
type Manager struct {
	Sessions *SessionCache
	Pages    *PageCache

	backend Cacher
}

// ManagerOptions configures the cache manager.
type ManagerOptions struct {
	SessionTTL time.Duration
	PageTTL    time.Duration
	Backend    BackendConfig
}

// NewManager creates the session cache and the rendered-page cache over
// the configured backend.
func NewManager(opts ManagerOptions) (*Manager, error) {
	backend, err := NewBackend(opts.Backend)
	if err != nil {
		return nil, err
	}

	return &Manager{
		Sessions: NewSessionCache(opts.SessionTTL),
		Pages:    NewPageCache(backend, opts.PageTTL),
		backend:  backend,
	}, nil
}

// Stop releases backend resources.
func (m *Manager) Stop() {
	if err := m.backend.Close(); err != nil {
		slog.Warn("closing cache backend", "error", err)
	}
}

// ClearAll clears all caches and resets statistics.
func (m *Manager) ClearAll(ctx context.Context) {
	m.Sessions.InvalidateAll()
	m.Sessions.ResetStats()
	if err := m.Pages.Clear(ctx); err != nil {
		slog.Warn("clearing page cache", "error", err)
	}
	if sp, ok := m.backend.(StatsProvider); ok {
		sp.ResetStats()
	}
	slog.Info("caches cleared")
}

// Ping reports backend health for caches that support it.
func (m *Manager) Ping(ctx context.Context) error {
	if rc, ok := m.backend.(*RedisCache); ok {
		return rc.Ping(ctx)
	}
	return nil
}

// AllStats returns statistics for all caches.
func (m *Manager) AllStats() []NamedStats {
	return []NamedStats{
		{Name: "sessions", Stats: m.Sessions.Stats()},
		{Name: "pages", Stats: m.Pages.Stats()},
	}
}
