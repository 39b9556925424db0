// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"database/sql"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/olegiv/opages-go/internal/blocks"
	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/store"
	"github.com/olegiv/opages-go/internal/util"
)

// FrontendHandler serves public pages: the catch-all route that renders
// stored block trees through the page cache.
type FrontendHandler struct {
	queries  *store.Queries
	pages    *cache.PageCache
	renderer *blocks.Renderer
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(db *sql.DB, pages *cache.PageCache, registry *blocks.Registry) *FrontendHandler {
	return &FrontendHandler{
		queries:  store.New(db),
		pages:    pages,
		renderer: blocks.NewRenderer(registry),
	}
}

// pageView is the data for the public page shell.
type pageView struct {
	Title   string
	Path    string
	Content template.HTML
}

// ServePage renders the page stored at the request path. A cache hit
// serves the previously rendered document; a miss renders from the
// store and fills the cache. Unknown paths get the 404 shell.
func (h *FrontendHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	path, err := util.NormalizePagePath(r.URL.Path)
	if err != nil {
		h.notFound(w, r.URL.Path)
		return
	}

	if html, ok := h.pages.Get(r.Context(), path); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
		return
	}

	page, err := h.queries.GetPageByPath(r.Context(), path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A sloppily typed URL may still name a stored page once
			// slugified; send the browser to the canonical location.
			if canonical := util.SlugifyPagePath(path); canonical != path {
				if _, err := h.queries.GetPageByPath(r.Context(), canonical); err == nil {
					http.Redirect(w, r, canonical, http.StatusMovedPermanently)
					return
				}
			}
			h.notFound(w, path)
			return
		}
		slog.Error("loading page", "path", path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := h.renderPage(page.Path, page.Data)
	if err != nil {
		slog.Error("rendering page", "path", path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.pages.Set(r.Context(), path, html); err != nil {
		slog.Warn("caching rendered page", "path", path, "error", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// renderPage renders a stored document into the full page shell.
func (h *FrontendHandler) renderPage(path, data string) (string, error) {
	tree, err := model.ParseBlockTree(data)
	if err != nil {
		return "", err
	}

	content, err := h.renderer.RenderTreeString(tree)
	if err != nil {
		return "", err
	}

	title, _ := tree.Root.Props["title"].(string)
	if title == "" {
		title = "oPages"
	}

	var buf bytes.Buffer
	err = templates.ExecuteTemplate(&buf, "page.html", pageView{
		Title:   title,
		Path:    path,
		Content: template.HTML(content),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (h *FrontendHandler) notFound(w http.ResponseWriter, path string) {
	renderTemplate(w, http.StatusNotFound, "notfound.html", struct{ Path string }{Path: path})
}
