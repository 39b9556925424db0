// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/middleware"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
)

// AuthHandler serves the sign-in page and the sign-out flow. Sign-in
// itself happens at the identity provider; this handler only hands the
// browser over and cleans up afterwards.
type AuthHandler struct {
	resolver    *auth.Resolver
	events      *service.EventService
	identityURL string
	secure      bool
}

// NewAuthHandler creates a new AuthHandler. identityURL is the
// provider's base URL; secure controls the cleared cookie's flag.
func NewAuthHandler(resolver *auth.Resolver, events *service.EventService, identityURL string, secure bool) *AuthHandler {
	return &AuthHandler{
		resolver:    resolver,
		events:      events,
		identityURL: strings.TrimRight(identityURL, "/"),
		secure:      secure,
	}
}

// signinView is the data for the sign-in template.
type signinView struct {
	SignInURL string
	Redirect  string
}

// SignIn renders the sign-in page with a link to the identity
// provider. The redirect parameter survives the round trip so the
// provider can send the browser back to the edit URL it came from.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	redirect := sanitizeRedirect(r.URL.Query().Get("redirect"))

	signInURL := h.identityURL + "/auth/signin"
	if redirect != "" {
		signInURL += "?redirect=" + url.QueryEscape(redirect)
	}

	renderTemplate(w, http.StatusOK, "signin.html", signinView{
		SignInURL: signInURL,
		Redirect:  redirect,
	})
}

// SignOut revokes the provider session, drops the local cache entry,
// clears the cookie and sends the browser home.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if token != "" {
		email := middleware.GetSessionEmail(r)
		if err := h.resolver.SignOut(r.Context(), token); err != nil {
			slog.Warn("revoking provider session", "error", err)
		}

		var emailPtr *string
		if email != "" {
			emailPtr = &email
		}
		_ = h.events.LogAuthEvent(r.Context(), model.EventLevelInfo, "signed out", emailPtr, middleware.ClientIP(r), nil)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     model.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// sanitizeRedirect accepts only local absolute paths so the sign-in
// page cannot bounce the browser to another site.
func sanitizeRedirect(redirect string) string {
	if redirect == "" {
		return ""
	}
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") || strings.HasPrefix(redirect, "/\\") {
		return ""
	}
	if strings.ContainsAny(redirect, "\r\n") {
		return ""
	}
	return redirect
}
