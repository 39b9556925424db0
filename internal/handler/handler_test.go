// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
	"github.com/olegiv/opages-go/internal/store"
)

// testDB creates a temporary migrated database.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "opages-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// testPageCache creates a page cache over an in-memory backend.
func testPageCache(t *testing.T) *cache.PageCache {
	t.Helper()

	backend := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { _ = backend.Close() })
	return cache.NewPageCache(backend, time.Minute)
}

// errTest stands in for an unreachable identity provider.
var errTest = errors.New("provider unreachable")

// stubProvider is a canned identity provider keyed by token.
type stubProvider struct {
	sessions map[string]*model.Session
	err      error
	signOuts int
}

func (p *stubProvider) Validate(_ context.Context, token string) (*model.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.sessions[token], nil
}

func (p *stubProvider) SignOut(_ context.Context, token string) error {
	p.signOuts++
	delete(p.sessions, token)
	return p.err
}

// staticLists is a fixed allow-list configuration.
type staticLists struct {
	admins  []string
	editors []string
}

func (l staticLists) AdminEmails() []string  { return l.admins }
func (l staticLists) EditorEmails() []string { return l.editors }

func testSession(email string) *model.Session {
	return &model.Session{
		UserID:    "u1",
		Email:     email,
		Name:      "Test User",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// testAuth wires a resolver and authorizer around a stub provider with
// one editor token "editor-token" and one viewer token "viewer-token".
func testAuth(t *testing.T) (*stubProvider, *auth.Resolver, *auth.Authorizer) {
	t.Helper()

	provider := &stubProvider{sessions: map[string]*model.Session{
		"editor-token": testSession("editor@example.com"),
		"viewer-token": testSession("viewer@example.com"),
		"admin-token":  testSession("admin@example.com"),
	}}
	resolver := auth.NewResolver(provider, cache.NewSessionCache(time.Minute))
	authorizer := auth.NewAuthorizer(staticLists{
		admins:  []string{"admin@example.com"},
		editors: []string{"editor@example.com"},
	})
	return provider, resolver, authorizer
}

func testEvents(db *sql.DB) *service.EventService {
	return service.NewEventService(db)
}
