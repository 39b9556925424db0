// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth maps identity-provider sessions to oPages roles and
// resolves tokens through the session cache.
package auth

import (
	"strings"

	"github.com/olegiv/opages-go/internal/model"
)

// EmailLists supplies the configured allow-lists. Reads happen on
// every call so a reloaded configuration takes effect without restart.
type EmailLists interface {
	AdminEmails() []string
	EditorEmails() []string
}

// Authorizer derives a role from an email address using the
// configured allow-lists.
type Authorizer struct {
	lists EmailLists
}

// NewAuthorizer creates an authorizer over the given allow-lists.
func NewAuthorizer(lists EmailLists) *Authorizer {
	return &Authorizer{lists: lists}
}

// RoleFor returns the role for an email. Admin wins over editor when
// an address appears on both lists; anyone else is a viewer.
func (a *Authorizer) RoleFor(email string) model.Role {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.RoleViewer
	}

	for _, admin := range a.lists.AdminEmails() {
		if email == admin {
			return model.RoleAdmin
		}
	}
	for _, editor := range a.lists.EditorEmails() {
		if email == editor {
			return model.RoleEditor
		}
	}
	return model.RoleViewer
}

// HasRole reports whether the email's role meets the minimum.
func (a *Authorizer) HasRole(email string, min model.Role) bool {
	return a.RoleFor(email).AtLeast(min)
}
