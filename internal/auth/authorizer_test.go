// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"testing"

	"github.com/olegiv/opages-go/internal/model"
)

type staticLists struct {
	admins  []string
	editors []string
}

func (s staticLists) AdminEmails() []string  { return s.admins }
func (s staticLists) EditorEmails() []string { return s.editors }

func TestAuthorizer_RoleFor(t *testing.T) {
	a := NewAuthorizer(staticLists{
		admins:  []string{"admin@example.com"},
		editors: []string{"editor@example.com", "both@example.com"},
	})

	tests := []struct {
		email string
		want  model.Role
	}{
		{"admin@example.com", model.RoleAdmin},
		{"editor@example.com", model.RoleEditor},
		{"stranger@example.com", model.RoleViewer},
		{"", model.RoleViewer},
		// Matching is case-insensitive and ignores whitespace.
		{"ADMIN@Example.COM", model.RoleAdmin},
		{"  editor@example.com  ", model.RoleEditor},
	}

	for _, tt := range tests {
		if got := a.RoleFor(tt.email); got != tt.want {
			t.Errorf("RoleFor(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestAuthorizer_AdminWinsOverEditor(t *testing.T) {
	a := NewAuthorizer(staticLists{
		admins:  []string{"both@example.com"},
		editors: []string{"both@example.com"},
	})

	if got := a.RoleFor("both@example.com"); got != model.RoleAdmin {
		t.Errorf("RoleFor on both lists = %v, want admin", got)
	}
}

func TestAuthorizer_HasRole(t *testing.T) {
	a := NewAuthorizer(staticLists{
		admins:  []string{"admin@example.com"},
		editors: []string{"editor@example.com"},
	})

	tests := []struct {
		email string
		min   model.Role
		want  bool
	}{
		{"admin@example.com", model.RoleAdmin, true},
		{"admin@example.com", model.RoleEditor, true},
		{"editor@example.com", model.RoleEditor, true},
		{"editor@example.com", model.RoleAdmin, false},
		{"stranger@example.com", model.RoleEditor, false},
		{"stranger@example.com", model.RoleViewer, true},
	}

	for _, tt := range tests {
		if got := a.HasRole(tt.email, tt.min); got != tt.want {
			t.Errorf("HasRole(%q, %v) = %v, want %v", tt.email, tt.min, got, tt.want)
		}
	}
}

func TestAuthorizer_ListChangesApplyImmediately(t *testing.T) {
	lists := &mutableLists{}
	a := NewAuthorizer(lists)

	if got := a.RoleFor("new@example.com"); got != model.RoleViewer {
		t.Fatalf("RoleFor before grant = %v, want viewer", got)
	}

	lists.editors = []string{"new@example.com"}

	if got := a.RoleFor("new@example.com"); got != model.RoleEditor {
		t.Errorf("RoleFor after grant = %v, want editor", got)
	}
}

type mutableLists struct {
	admins  []string
	editors []string
}

func (m *mutableLists) AdminEmails() []string  { return m.admins }
func (m *mutableLists) EditorEmails() []string { return m.editors }
