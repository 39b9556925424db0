// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/olegiv/opages-go/web"
)

// templates holds all embedded page shells, parsed once at startup.
var templates = template.Must(template.ParseFS(web.Templates, "templates/*.html"))

// renderTemplate executes a template into a buffer first so a render
// failure becomes a clean 500 instead of a half-written page.
func renderTemplate(w http.ResponseWriter, statusCode int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}
