// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mileusna/useragent"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/blocks"
	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/middleware"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
	"github.com/olegiv/opages-go/internal/store"
	"github.com/olegiv/opages-go/internal/util"
)

// maxSaveBodySize bounds the save payload; block trees are text.
const maxSaveBodySize = 2 << 20

// APIHandler serves the editor's JSON API: page saves and field
// resolution.
type APIHandler struct {
	queries    *store.Queries
	pages      *cache.PageCache
	resolver   *auth.Resolver
	authorizer *auth.Authorizer
	registry   *blocks.Registry
	events     *service.EventService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(db *sql.DB, pages *cache.PageCache, resolver *auth.Resolver, authorizer *auth.Authorizer, registry *blocks.Registry, events *service.EventService) *APIHandler {
	return &APIHandler{
		queries:    store.New(db),
		pages:      pages,
		resolver:   resolver,
		authorizer: authorizer,
		registry:   registry,
		events:     events,
	}
}

// savePayload is the save request body. Path is decoded loosely so a
// non-string value produces a field error rather than a bare decode
// failure; Data stays raw until the path has been accepted.
type savePayload struct {
	Path any             `json:"path"`
	Data json.RawMessage `json:"data"`
}

// saveResponse mirrors what editor clients expect from a publish:
// modifiedCount says whether an existing document changed, upsertedId
// appears only when the save created the document.
type saveResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	ModifiedCount int    `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// requireEditor resolves the request's session and checks the editor
// role. It writes the error response itself and returns nil when the
// request must not proceed.
func (h *APIHandler) requireEditor(w http.ResponseWriter, r *http.Request) *model.Session {
	session, err := h.resolver.Resolve(r.Context(), middleware.SessionToken(r))
	if err != nil {
		slog.Error("resolving session for save", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Session validation unavailable", nil)
		return nil
	}
	if session == nil {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Session token required", nil)
		return nil
	}
	if !h.authorizer.HasRole(session.Email, model.RoleEditor) {
		writeJSONError(w, http.StatusForbidden, "forbidden", "Editing requires the editor role", nil)
		return nil
	}
	return session
}

// SavePage handles POST /puck/api: validate the document and upsert it
// at its path.
func (h *APIHandler) SavePage(w http.ResponseWriter, r *http.Request) {
	session := h.requireEditor(w, r)
	if session == nil {
		return
	}

	var payload savePayload
	r.Body = http.MaxBytesReader(w, r.Body, maxSaveBodySize)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Invalid JSON in request body", nil)
		return
	}

	rawPath, ok := payload.Path.(string)
	if !ok || rawPath == "" {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Missing or invalid 'path' field",
			map[string]string{"path": "path is required and must be a string"})
		return
	}
	path, err := util.NormalizePagePath(rawPath)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Invalid page path",
			map[string]string{"path": err.Error()})
		return
	}

	if len(payload.Data) == 0 {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Missing 'data' field",
			map[string]string{"data": "data field is required"})
		return
	}
	tree, err := model.ParseBlockTree(string(payload.Data))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Invalid page document",
			map[string]string{"data": err.Error()})
		return
	}
	if err := blocks.ValidateTree(tree); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Invalid page document",
			map[string]string{"data": err.Error()})
		return
	}

	data, err := tree.Encode()
	if err != nil {
		slog.Error("encoding page document", "path", path, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to store page", nil)
		return
	}

	result, err := h.queries.UpsertPage(r.Context(), store.UpsertPageParams{Path: path, Data: data})
	if err != nil {
		slog.Error("saving page", "path", path, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "Failed to store page", nil)
		return
	}

	if err := h.pages.Invalidate(r.Context(), path); err != nil {
		slog.Warn("invalidating page cache", "path", path, "error", err)
	}

	h.logSave(r, session, path, result)

	writeJSON(w, http.StatusOK, saveResponse{
		Status:        "ok",
		Message:       "Page updated successfully",
		ModifiedCount: result.ModifiedCount(),
		UpsertedID:    result.UpsertedID,
	})
}

// logSave records the save in the audit trail with the client's
// browser family.
func (h *APIHandler) logSave(r *http.Request, session *model.Session, path string, result model.SaveResult) {
	action := "page updated"
	if result.Created {
		action = "page created"
	}

	ua := useragent.Parse(r.UserAgent())
	metadata := map[string]any{
		"path":    path,
		"browser": ua.Name,
	}
	if ua.OS != "" {
		metadata["os"] = ua.OS
	}

	email := session.Email
	_ = h.events.LogPageEvent(r.Context(), model.EventLevelInfo, action, &email, middleware.ClientIP(r), metadata)
}

// fieldsPayload is the field-resolution request body.
type fieldsPayload struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// fieldsResponse carries the resolved fields for one block kind.
type fieldsResponse struct {
	Fields []blocks.Field `json:"fields"`
}

// ResolveFields handles POST /puck/api/fields: return the fields
// visible for a block kind given its current props.
func (h *APIHandler) ResolveFields(w http.ResponseWriter, r *http.Request) {
	if h.requireEditor(w, r) == nil {
		return
	}

	var payload fieldsPayload
	r.Body = http.MaxBytesReader(w, r.Body, maxSaveBodySize)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Invalid JSON in request body", nil)
		return
	}

	def, ok := h.registry.Get(payload.Type)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "validation_error", "Unknown block kind",
			map[string]string{"type": "no block kind named " + payload.Type})
		return
	}

	props := blocks.MergeDefaults(def.Defaults, payload.Props)
	fields := def.ResolveFields(props)
	if fields == nil {
		fields = []blocks.Field{}
	}
	writeJSON(w, http.StatusOK, fieldsResponse{Fields: fields})
}
