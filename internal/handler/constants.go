// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the application: the
// public page renderer, the editor shell, the save API and the
// sign-in/sign-out flows.
package handler

// Route paths. The editor namespace is reachable only through the
// gate rewrite.
const (
	PathEditorPrefix    = "/puck"
	PathEditorAPI       = "/puck/api"
	PathEditorFields    = "/puck/api/fields"
	PathAdminEvents     = "/puck/api/events"
	PathAdminCacheClear = "/puck/api/cache/clear"
	PathSignIn          = "/auth/signin"
	PathSignOut         = "/auth/signout"
	PathHealth          = "/healthz"
)
