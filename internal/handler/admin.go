// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/middleware"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
)

// recentEventLimit caps the audit-trail listing.
const recentEventLimit = 50

// AdminHandler serves the admin-only maintenance API: the audit trail
// and cache clearing. Both live under the editor namespace as POSTs so
// the routing gate never bounces them.
type AdminHandler struct {
	resolver   *auth.Resolver
	authorizer *auth.Authorizer
	events     *service.EventService
	caches     *cache.Manager
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(resolver *auth.Resolver, authorizer *auth.Authorizer, events *service.EventService, caches *cache.Manager) *AdminHandler {
	return &AdminHandler{
		resolver:   resolver,
		authorizer: authorizer,
		events:     events,
		caches:     caches,
	}
}

// requireAdmin resolves the request's session and checks the admin
// role. It writes the error response itself and returns nil when the
// request must not proceed.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) *model.Session {
	session, err := h.resolver.Resolve(r.Context(), middleware.SessionToken(r))
	if err != nil {
		slog.Error("resolving session for admin request", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Session validation unavailable", nil)
		return nil
	}
	if session == nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Session token required", nil)
		return nil
	}
	if !h.authorizer.HasRole(session.Email, model.RoleAdmin) {
		writeJSONError(w, http.StatusForbidden, "forbidden", "This operation requires the admin role", nil)
		return nil
	}
	return session
}

// eventView is one audit-trail entry as shipped to the client.
type eventView struct {
	ID        int64  `json:"id"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	UserEmail string `json:"user_email,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Metadata  string `json:"metadata"`
	CreatedAt string `json:"created_at"`
}

type eventsResponse struct {
	Events []eventView `json:"events"`
}

// ListEvents handles POST /puck/api/events: the newest audit-trail
// entries, admin only.
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if h.requireAdmin(w, r) == nil {
		return
	}

	events, err := h.events.RecentEvents(r.Context(), recentEventLimit)
	if err != nil {
		slog.Error("listing events", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to load events", nil)
		return
	}

	views := make([]eventView, 0, len(events))
	for _, ev := range events {
		views = append(views, eventView{
			ID:        ev.ID,
			Level:     ev.Level,
			Category:  ev.Category,
			Message:   ev.Message,
			UserEmail: ev.UserEmail.String,
			IPAddress: ev.IPAddress,
			Metadata:  ev.Metadata,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, eventsResponse{Events: views})
}

// ClearCaches handles POST /puck/api/cache/clear: drop every cached
// session and rendered page, admin only. Sessions re-validate against
// the provider on the next request.
func (h *AdminHandler) ClearCaches(w http.ResponseWriter, r *http.Request) {
	session := h.requireAdmin(w, r)
	if session == nil {
		return
	}

	h.caches.ClearAll(r.Context())

	email := session.Email
	_ = h.events.LogCacheEvent(r.Context(), model.EventLevelInfo, "caches cleared",
		&email, middleware.ClientIP(r), nil)

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Caches cleared",
	})
}
