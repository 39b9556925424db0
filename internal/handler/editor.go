// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/blocks"
	"github.com/olegiv/opages-go/internal/middleware"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/store"
	"github.com/olegiv/opages-go/internal/util"
)

// EditorHandler serves the editor shell for rewritten /edit requests.
type EditorHandler struct {
	queries    *store.Queries
	resolver   *auth.Resolver
	authorizer *auth.Authorizer
	registry   *blocks.Registry
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(db *sql.DB, resolver *auth.Resolver, authorizer *auth.Authorizer, registry *blocks.Registry) *EditorHandler {
	return &EditorHandler{
		queries:    store.New(db),
		resolver:   resolver,
		authorizer: authorizer,
		registry:   registry,
	}
}

// editorView is the data for the editor shell template.
type editorView struct {
	Path     string
	Document template.JS
	Schemas  template.JS
}

// blockSchema is the catalog entry shipped to the editor client.
type blockSchema struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Fields   []blocks.Field `json:"fields"`
	Defaults map[string]any `json:"defaults"`
	Zones    []string       `json:"zones,omitempty"`
}

// ServeEditor renders the editor for the page behind the rewritten
// path. Requests that did not come through the gate rewrite bounce
// home; anonymous sessions go to sign-in; viewers bounce home.
func (h *EditorHandler) ServeEditor(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsEditRewrite(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, middleware.EditorPrefix)
	if path == "" || path == "/" {
		path = "/"
	}
	path, err := util.NormalizePagePath(path)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	session, err := h.resolver.Resolve(r.Context(), middleware.SessionToken(r))
	if err != nil {
		slog.Error("resolving editor session", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if session == nil {
		// The cookie exists but the session is gone; send the browser
		// back through sign-in with the public edit URL to return to.
		editURL := path + "/edit"
		if path == "/" {
			editURL = "/edit"
		}
		http.Redirect(w, r, PathSignIn+"?redirect="+url.QueryEscape(editURL), http.StatusFound)
		return
	}
	if !h.authorizer.HasRole(session.Email, model.RoleEditor) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	document := "{}"
	page, err := h.queries.GetPageByPath(r.Context(), path)
	switch {
	case err == nil:
		document = page.Data
	case errors.Is(err, sql.ErrNoRows):
		// New path; the editor starts from a blank document.
	default:
		slog.Error("loading page for editor", "path", path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	schemas, err := h.schemaJSON()
	if err != nil {
		slog.Error("encoding block schemas", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderTemplate(w, http.StatusOK, "editor.html", editorView{
		Path:     path,
		Document: template.JS(document),
		Schemas:  template.JS(schemas),
	})
}

// schemaJSON serializes the block catalog for the editor client.
func (h *EditorHandler) schemaJSON() (string, error) {
	defs := h.registry.List()
	schemas := make([]blockSchema, 0, len(defs))
	for _, d := range defs {
		defaults := d.Defaults
		if defaults == nil {
			defaults = map[string]any{}
		}
		schemas = append(schemas, blockSchema{
			Name:     d.Name,
			Label:    d.Label,
			Fields:   d.Fields,
			Defaults: defaults,
			Zones:    d.Zones,
		})
	}

	b, err := json.Marshal(schemas)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
