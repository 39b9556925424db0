// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *cache.Manager, *service.EventService) {
	t.Helper()

	db := testDB(t)
	_, resolver, authorizer := testAuth(t)
	caches, err := cache.NewManager(cache.ManagerOptions{
		SessionTTL: time.Minute,
		PageTTL:    time.Minute,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(caches.Stop)

	events := testEvents(db)
	return NewAdminHandler(resolver, authorizer, events, caches), caches, events
}

func postAdmin(t *testing.T, fn http.HandlerFunc, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestListEvents_Admin(t *testing.T) {
	h, _, events := newAdminHandler(t)
	email := "editor@example.com"
	if err := events.LogPageEvent(context.Background(), model.EventLevelInfo, "page updated",
		&email, "127.0.0.1", map[string]any{"path": "/about"}); err != nil {
		t.Fatalf("LogPageEvent: %v", err)
	}

	rec := postAdmin(t, h.ListEvents, PathAdminEvents, "admin-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body eventsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(body.Events))
	}
	ev := body.Events[0]
	if ev.Category != model.EventCategoryPage || ev.UserEmail != "editor@example.com" {
		t.Errorf("event = %+v", ev)
	}
}

func TestListEvents_RoleMatrix(t *testing.T) {
	h, _, _ := newAdminHandler(t)

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"viewer", "viewer-token", http.StatusForbidden},
		{"editor", "editor-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAdmin(t, h.ListEvents, PathAdminEvents, tt.token)
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
		})
	}
}

func TestClearCaches(t *testing.T) {
	h, caches, events := newAdminHandler(t)
	ctx := context.Background()

	if err := caches.Pages.Set(ctx, "/about", "<p>cached</p>"); err != nil {
		t.Fatalf("seeding page cache: %v", err)
	}

	rec := postAdmin(t, h.ClearCaches, PathAdminCacheClear, "admin-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if _, ok := caches.Pages.Get(ctx, "/about"); ok {
		t.Error("clear must drop cached renders")
	}
	if caches.Sessions.Len() != 0 {
		t.Errorf("session cache Len() = %d after clear, want 0", caches.Sessions.Len())
	}

	recorded, err := events.RecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(recorded) != 1 || recorded[0].Category != model.EventCategoryCache {
		t.Errorf("events after clear = %+v, want one cache event", recorded)
	}
	if recorded[0].UserEmail.String != "admin@example.com" {
		t.Errorf("event email = %q, want the acting admin", recorded[0].UserEmail.String)
	}
}

func TestClearCaches_EditorForbidden(t *testing.T) {
	h, caches, _ := newAdminHandler(t)
	ctx := context.Background()

	if err := caches.Pages.Set(ctx, "/about", "<p>cached</p>"); err != nil {
		t.Fatalf("seeding page cache: %v", err)
	}

	rec := postAdmin(t, h.ClearCaches, PathAdminCacheClear, "editor-token")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if _, ok := caches.Pages.Get(ctx, "/about"); !ok {
		t.Error("forbidden request must not clear the cache")
	}
}
