// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/version"
)

// HealthHandler reports service health for load balancers and
// monitoring.
type HealthHandler struct {
	db      *sql.DB
	caches  *cache.Manager
	version *version.Info
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB, caches *cache.Manager, versionInfo *version.Info) *HealthHandler {
	return &HealthHandler{db: db, caches: caches, version: versionInfo}
}

// healthResponse is the health check payload.
type healthResponse struct {
	Status  string             `json:"status"`
	Version string             `json:"version"`
	Time    time.Time          `json:"time"`
	Checks  map[string]string  `json:"checks"`
	Caches  []cache.NamedStats `json:"caches"`
}

// Health handles GET /healthz. The database check is authoritative; a
// cache backend failure degrades the status without failing the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Version: h.version.Version,
		Time:    time.Now().UTC(),
		Checks:  map[string]string{"database": "ok", "cache": "ok"},
		Caches:  h.caches.AllStats(),
	}
	statusCode := http.StatusOK

	if err := h.db.PingContext(r.Context()); err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	if err := h.caches.Ping(r.Context()); err != nil {
		if resp.Status == "ok" {
			resp.Status = "degraded"
		}
		resp.Checks["cache"] = err.Error()
	}

	writeJSON(w, statusCode, resp)
}
