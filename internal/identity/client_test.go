// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func validateServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second)
}

func TestClient_Validate_OK(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/session/validate" {
			t.Errorf("path = %s, want /api/session/validate", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"valid":      true,
			"user_id":    "u1",
			"email":      "Editor@Example.com",
			"name":       "Editor",
			"expires_at": time.Now().Add(time.Hour).Format(time.RFC3339),
		})
	})

	session, err := client.Validate(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if session == nil {
		t.Fatal("expected session for valid token")
	}
	if session.Email != "editor@example.com" {
		t.Errorf("Email = %q, want lowercased", session.Email)
	}
	if session.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", session.UserID)
	}
}

func TestClient_Validate_InvalidToken(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	session, err := client.Validate(context.Background(), "bad-token")
	if err != nil {
		t.Fatalf("invalid token should not be an error, got %v", err)
	}
	if session != nil {
		t.Errorf("session = %v, want nil for invalid token", session)
	}
}

func TestClient_Validate_NotValidFlag(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": false})
	})

	session, err := client.Validate(context.Background(), "token")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if session != nil {
		t.Error("valid=false should yield nil session")
	}
}

func TestClient_Validate_ExpiredSession(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"valid":      true,
			"user_id":    "u1",
			"email":      "a@example.com",
			"expires_at": time.Now().Add(-time.Minute).Format(time.RFC3339),
		})
	})

	session, err := client.Validate(context.Background(), "token")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if session != nil {
		t.Error("provider-expired session should yield nil")
	}
}

func TestClient_Validate_ProviderError(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Validate(context.Background(), "token")
	if err == nil {
		t.Error("5xx should surface as a transport error, not an invalid token")
	}
}

func TestClient_Validate_EmptyToken(t *testing.T) {
	called := false
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	session, err := client.Validate(context.Background(), "")
	if err != nil || session != nil {
		t.Errorf("empty token: session=%v err=%v, want nil/nil", session, err)
	}
	if called {
		t.Error("empty token should not hit the provider")
	}
}

func TestClient_SignOut(t *testing.T) {
	revoked := false
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/session/revoke" {
			t.Errorf("%s %s, want POST /api/session/revoke", r.Method, r.URL.Path)
		}
		revoked = true
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.SignOut(context.Background(), "token"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if !revoked {
		t.Error("expected revocation request")
	}
}

func TestClient_SignOut_UnknownToken(t *testing.T) {
	client := validateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := client.SignOut(context.Background(), "stale"); err != nil {
		t.Errorf("unknown token should already count as revoked, got %v", err)
	}
}
