// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the core domain types: pages, block trees,
// sessions, roles and audit events.
package model

// Role is an authorization level. Higher values include the
// capabilities of lower ones.
type Role int

// Roles in ascending order of capability.
const (
	RoleViewer Role = iota
	RoleEditor
	RoleAdmin
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleEditor:
		return "editor"
	default:
		return "viewer"
	}
}

// AtLeast reports whether r grants everything required does.
func (r Role) AtLeast(required Role) bool {
	return r >= required
}

// CanEdit reports whether the role may open the editor and save pages.
func (r Role) CanEdit() bool {
	return r.AtLeast(RoleEditor)
}
