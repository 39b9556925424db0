// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/opages-go/internal/model"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *stubProvider) {
	t.Helper()

	db := testDB(t)
	provider, resolver, _ := testAuth(t)
	return NewAuthHandler(resolver, testEvents(db), "https://id.example.com/", false), provider
}

func TestSignIn_RendersProviderLink(t *testing.T) {
	h, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, PathSignIn+"?redirect=%2Fabout%2Fedit", nil)
	rec := httptest.NewRecorder()
	h.SignIn(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "https://id.example.com/auth/signin?redirect=%2Fabout%2Fedit") {
		t.Errorf("body missing provider link with redirect: %s", body)
	}
	if !strings.Contains(body, "/about/edit") {
		t.Error("body missing the return path hint")
	}
}

func TestSignIn_RejectsExternalRedirect(t *testing.T) {
	h, _ := newAuthHandler(t)

	tests := []string{
		"https://evil.example.com/",
		"//evil.example.com/",
		"/\\evil.example.com",
		"about/edit",
	}

	for _, redirect := range tests {
		t.Run(redirect, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, PathSignIn+"?redirect="+strings.ReplaceAll(redirect, "\\", "%5C"), nil)
			rec := httptest.NewRecorder()
			h.SignIn(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			body := rec.Body.String()
			if strings.Contains(body, "evil.example.com") {
				t.Errorf("external redirect leaked into the page: %s", body)
			}
			if strings.Contains(body, "?redirect=") {
				t.Errorf("rejected redirect still forwarded to the provider: %s", body)
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	h, provider := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, PathSignOut, nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: "editor-token"})
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
	if provider.signOuts != 1 {
		t.Errorf("provider sign-outs = %d, want 1", provider.signOuts)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == model.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie not cleared")
	}
}

func TestSignOut_Anonymous(t *testing.T) {
	h, provider := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, PathSignOut, nil)
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if provider.signOuts != 0 {
		t.Error("anonymous sign-out must not hit the provider")
	}
}

func TestSignOut_ProviderFailureStillClearsCookie(t *testing.T) {
	h, provider := newAuthHandler(t)
	provider.err = errTest

	req := httptest.NewRequest(http.MethodGet, PathSignOut, nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: "editor-token"})
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302 even when revocation fails", rec.Code)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == model.SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie must clear even when the provider is down")
	}
}

func TestSignOut_LogsAuthEvent(t *testing.T) {
	db := testDB(t)
	provider, resolver, _ := testAuth(t)
	events := testEvents(db)
	h := NewAuthHandler(resolver, events, "https://id.example.com", false)
	_ = provider

	// Resolve first so the session context carries the email.
	session, err := resolver.Resolve(context.Background(), "editor-token")
	if err != nil || session == nil {
		t.Fatalf("resolving session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, PathSignOut, nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: "editor-token"})
	rec := httptest.NewRecorder()
	h.SignOut(rec, req)

	got, err := events.RecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].Category != model.EventCategoryAuth {
		t.Errorf("event category = %q, want auth", got[0].Category)
	}
}
