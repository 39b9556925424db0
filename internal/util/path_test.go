// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestNormalizePagePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"root", "/", "/", false},
		{"simple", "/about", "/about", false},
		{"nested", "/docs/intro", "/docs/intro", false},
		{"trailing_slash", "/about/", "/about", false},
		{"duplicate_slashes", "//a///b", "/a/b", false},
		{"dot_segments", "/a/./b/../c", "/a/c", false},
		{"empty", "", "", true},
		{"relative", "about", "", true},
		{"query", "/about?x=1", "", true},
		{"fragment", "/about#top", "", true},
		{"escapes_root", "/../etc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePagePath(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePagePath(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePagePath(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizePagePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePagePath_Idempotent(t *testing.T) {
	paths := []string{"/", "/about", "/docs/getting-started", "/a/b/c"}
	for _, p := range paths {
		once, err := NormalizePagePath(p)
		if err != nil {
			t.Fatalf("NormalizePagePath(%q) error: %v", p, err)
		}
		twice, err := NormalizePagePath(once)
		if err != nil {
			t.Fatalf("NormalizePagePath(%q) error: %v", once, err)
		}
		if once != twice {
			t.Errorf("NormalizePagePath not idempotent: %q -> %q -> %q", p, once, twice)
		}
	}
}

func TestSlugifyPagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/About Us/", "/about-us"},
		{"/Café/Menu", "/cafe/menu"},
		{"/docs//Getting Started", "/docs/getting-started"},
		{"/", "/"},
		{"/!!!/ok", "/ok"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SlugifyPagePath(tt.in); got != tt.want {
				t.Errorf("SlugifyPagePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
