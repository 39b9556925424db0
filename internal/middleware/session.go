// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/olegiv/opages-go/internal/model"
)

// SessionResolver resolves a session token to a validated session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.Session, error)
}

// SessionToken returns the session token from the request cookie, or
// "" when the cookie is absent.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(model.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// LoadSession resolves the session cookie and stores the result in the
// request context. Anonymous requests and invalid tokens continue
// without a session, as does a provider outage; routes that must
// distinguish an outage resolve the token themselves.
func LoadSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				slog.Warn("session resolution failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
