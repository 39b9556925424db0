// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/olegiv/opages-go/internal/model"
)

const (
	// editSuffix marks a public path as an edit request.
	editSuffix = "/edit"

	// EditorPrefix is the internal editor namespace. Requests land
	// here only through the gate rewrite; the prefix never appears in
	// client-facing URLs.
	EditorPrefix = "/puck"

	// SignInPath receives anonymous edit requests.
	SignInPath = "/auth/signin"
)

// EditGate routes edit requests into the editor namespace. A GET or
// HEAD whose path ends in /edit is redirected to sign-in when the
// request carries no session cookie, and otherwise rewritten in place
// to the editor namespace. Direct requests to the editor namespace
// that did not come through the rewrite bounce to the home page.
func EditGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path

		if path == editSuffix || strings.HasSuffix(path, editSuffix) {
			if _, err := r.Cookie(model.SessionCookieName); err != nil {
				http.Redirect(w, r, SignInPath+"?redirect="+url.QueryEscape(path), http.StatusFound)
				return
			}

			// Rewrite in place; the browser URL keeps the /edit form.
			target := strings.TrimSuffix(path, editSuffix)
			if target == "" {
				target = "/"
			}
			r.URL.Path = EditorPrefix + target
			next.ServeHTTP(w, markEditRewrite(r))
			return
		}

		if path == EditorPrefix || strings.HasPrefix(path, EditorPrefix+"/") {
			// Only the gate may route GETs into the editor namespace.
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
