// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for the oPages
// application: the edit routing gate, session loading, security
// headers, CSRF protection and rate limiting.
package middleware

import (
	"context"
	"net/http"

	"github.com/olegiv/opages-go/internal/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for request-scoped data.
const (
	ContextKeySession     ContextKey = "session"
	ContextKeyEditRewrite ContextKey = "edit_rewrite"
	ContextKeyRequestPath ContextKey = "request_path"
)

// WithSession stores a resolved session in the request context.
func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}

// GetSession retrieves the resolved session from the request context.
// Returns nil when the request carries no valid session.
func GetSession(r *http.Request) *model.Session {
	session, ok := r.Context().Value(ContextKeySession).(*model.Session)
	if !ok {
		return nil
	}
	return session
}

// GetSessionEmail returns the session email from context, or "" when
// the request is anonymous.
func GetSessionEmail(r *http.Request) string {
	if s := GetSession(r); s != nil {
		return s.Email
	}
	return ""
}

// markEditRewrite marks a request whose URL the edit gate rewrote into
// the editor namespace.
func markEditRewrite(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ContextKeyEditRewrite, true))
}

// IsEditRewrite reports whether the edit gate rewrote this request.
// Editor routes reject requests that arrive without the rewrite.
func IsEditRewrite(r *http.Request) bool {
	rewritten, ok := r.Context().Value(ContextKeyEditRewrite).(bool)
	return ok && rewritten
}

// RequestPath stores the request path in the context for the logging
// handler to pick up on error records.
func RequestPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ContextKeyRequestPath, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestPath retrieves the request path from the context.
func GetRequestPath(ctx context.Context) string {
	path, ok := ctx.Value(ContextKeyRequestPath).(string)
	if !ok {
		return ""
	}
	return path
}
