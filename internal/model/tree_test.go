// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlockTree_RoundTrip(t *testing.T) {
	src := `{
		"root": {"props": {"title": "Home"}},
		"content": [
			{"type": "HeadingBlock", "props": {"id": "h1", "text": "Welcome", "level": 1}},
			{"type": "GridBlock", "props": {"id": "g1", "columns": 2}}
		],
		"zones": {
			"g1:grid-content": [
				{"type": "TextBlock", "props": {"id": "t1", "content": "Hello"}}
			]
		}
	}`

	tree, err := ParseBlockTree(src)
	require.NoError(t, err)
	require.Len(t, tree.Content, 2)
	require.Equal(t, "HeadingBlock", tree.Content[0].Type)
	require.Equal(t, "h1", tree.Content[0].ID())
	require.Equal(t, "Home", tree.Root.Props["title"])

	children := tree.ZoneChildren("g1", "grid-content")
	require.Len(t, children, 1)
	require.Equal(t, "t1", children[0].ID())

	encoded, err := tree.Encode()
	require.NoError(t, err)

	again, err := ParseBlockTree(encoded)
	require.NoError(t, err)
	require.Equal(t, tree, again)
}

func TestParseBlockTree_Empty(t *testing.T) {
	for _, src := range []string{"", "  ", "{}"} {
		tree, err := ParseBlockTree(src)
		if err != nil {
			t.Fatalf("ParseBlockTree(%q) error: %v", src, err)
		}
		if len(tree.Content) != 0 {
			t.Errorf("ParseBlockTree(%q) content = %v, want empty", src, tree.Content)
		}
	}
}

func TestParseBlockTree_Invalid(t *testing.T) {
	if _, err := ParseBlockTree("not json"); err == nil {
		t.Fatal("ParseBlockTree should fail on malformed input")
	}
}

func TestSplitZoneKey(t *testing.T) {
	tests := []struct {
		key    string
		nodeID string
		zone   string
		ok     bool
	}{
		{"g1:grid-content", "g1", "grid-content", true},
		{"node:with:colons", "node:with", "colons", true},
		{"nozone", "", "", false},
		{":zone", "", "", false},
		{"node:", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			nodeID, zone, ok := SplitZoneKey(tt.key)
			if ok != tt.ok || nodeID != tt.nodeID || zone != tt.zone {
				t.Errorf("SplitZoneKey(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.key, nodeID, zone, ok, tt.nodeID, tt.zone, tt.ok)
			}
		})
	}
}

func TestBlockNode_ID(t *testing.T) {
	n := BlockNode{Type: "TextBlock", Props: map[string]any{"id": "t1"}}
	if n.ID() != "t1" {
		t.Errorf("ID() = %q, want %q", n.ID(), "t1")
	}
	missing := BlockNode{Type: "TextBlock", Props: map[string]any{}}
	if missing.ID() != "" {
		t.Errorf("ID() = %q, want empty", missing.ID())
	}
	wrongType := BlockNode{Type: "TextBlock", Props: map[string]any{"id": 42}}
	if wrongType.ID() != "" {
		t.Errorf("ID() = %q, want empty for non-string id", wrongType.ID())
	}
}
