// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
)

// fakeProvider counts provider calls and serves canned results.
type fakeProvider struct {
	session    *model.Session
	err        error
	validates  int
	signOuts   int
	signOutErr error
}

func (f *fakeProvider) Validate(_ context.Context, token string) (*model.Session, error) {
	f.validates++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakeProvider) SignOut(_ context.Context, token string) error {
	f.signOuts++
	return f.signOutErr
}

func liveSession() *model.Session {
	return &model.Session{
		UserID:    "u1",
		Email:     "editor@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestResolver_CachesValidation(t *testing.T) {
	provider := &fakeProvider{session: liveSession()}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)
	ctx := context.Background()

	first, err := r.Resolve(ctx, "token")
	if err != nil || first == nil {
		t.Fatalf("first resolve: session=%v err=%v", first, err)
	}
	second, err := r.Resolve(ctx, "token")
	if err != nil || second == nil {
		t.Fatalf("second resolve: session=%v err=%v", second, err)
	}

	if provider.validates != 1 {
		t.Errorf("provider called %d times, want 1 (second hit served from cache)", provider.validates)
	}
}

func TestResolver_InvalidTokenNotCached(t *testing.T) {
	provider := &fakeProvider{session: nil}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)
	ctx := context.Background()

	session, err := r.Resolve(ctx, "bad")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if session != nil {
		t.Fatalf("Resolve = %v, want nil for invalid token", session)
	}
	_, _ = r.Resolve(ctx, "bad")

	if provider.validates != 2 {
		t.Errorf("provider called %d times, want 2 (invalid tokens are not negative-cached)", provider.validates)
	}
}

func TestResolver_ProviderErrorSurfaces(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)

	session, err := r.Resolve(context.Background(), "token")
	if err == nil {
		t.Error("provider outage must surface as an error, not an invalid token")
	}
	if session != nil {
		t.Errorf("session = %v on outage, want nil", session)
	}
}

func TestResolver_CacheHitSkipsProviderOutage(t *testing.T) {
	provider := &fakeProvider{session: liveSession()}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "token"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Provider goes down; cached token still resolves.
	provider.err = errors.New("unreachable")
	session, err := r.Resolve(ctx, "token")
	if err != nil || session == nil {
		t.Errorf("cached resolve during outage: session=%v err=%v", session, err)
	}
}

func TestResolver_EmptyToken(t *testing.T) {
	provider := &fakeProvider{session: liveSession()}
	r := NewResolver(provider, cache.NewSessionCache(time.Minute))

	session, err := r.Resolve(context.Background(), "")
	if session != nil || err != nil {
		t.Errorf("Resolve(\"\") = %v, %v, want nil, nil", session, err)
	}
	if provider.validates != 0 {
		t.Error("empty token should not hit the provider")
	}
}

func TestResolver_SignOutInvalidatesCache(t *testing.T) {
	provider := &fakeProvider{session: liveSession()}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "token"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := r.SignOut(ctx, "token"); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if provider.signOuts != 1 {
		t.Errorf("provider sign-outs = %d, want 1", provider.signOuts)
	}

	// A fresh resolve must go back to the provider, not the cache.
	provider.session = nil
	session, err := r.Resolve(ctx, "token")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if session != nil {
		t.Errorf("Resolve after sign-out = %v, want nil", session)
	}
}

func TestResolver_SignOutDropsCacheOnProviderError(t *testing.T) {
	provider := &fakeProvider{session: liveSession(), signOutErr: errors.New("unreachable")}
	sessions := cache.NewSessionCache(time.Minute)
	r := NewResolver(provider, sessions)
	ctx := context.Background()

	if _, err := r.Resolve(ctx, "token"); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := r.SignOut(ctx, "token"); err == nil {
		t.Error("expected provider error to surface")
	}

	// The cache entry is gone even though revocation failed.
	provider.session = nil
	provider.err = errors.New("still down")
	if _, err := r.Resolve(ctx, "token"); err == nil {
		t.Error("resolve should hit the provider again after sign-out")
	}
}
