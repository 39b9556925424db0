// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"fmt"

	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
)

// Validator validates session tokens against the identity provider.
type Validator interface {
	Validate(ctx context.Context, token string) (*model.Session, error)
	SignOut(ctx context.Context, token string) error
}

// Resolver resolves session tokens, consulting the session cache
// before the identity provider. Only successful validations are
// cached; provider failures are never negative-cached.
type Resolver struct {
	provider Validator
	sessions *cache.SessionCache
}

// NewResolver creates a resolver over the provider and session cache.
func NewResolver(provider Validator, sessions *cache.SessionCache) *Resolver {
	return &Resolver{provider: provider, sessions: sessions}
}

// Resolve returns the session for a token. An empty, invalid or
// expired token yields (nil, nil). A provider failure on a cache miss
// is returned as an error; the caller decides whether that is fatal.
func (r *Resolver) Resolve(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}

	if session := r.sessions.Get(token); session != nil {
		return session, nil
	}

	session, err := r.provider.Validate(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	r.sessions.Set(token, session)
	return session, nil
}

// SignOut revokes the token at the provider and drops it from the
// cache. The cache entry goes regardless of the provider outcome so a
// signed-out token never resolves locally.
func (r *Resolver) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := r.provider.SignOut(ctx, token)
	r.sessions.Invalidate(token)
	return err
}
