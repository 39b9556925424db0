// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/olegiv/opages-go/internal/model"
)

func TestValidateTree_Valid(t *testing.T) {
	tree := &model.BlockTree{
		Content: []model.BlockNode{
			{Type: "SectionBlock", Props: map[string]any{"id": "s1"}},
			{Type: "UnknownFutureBlock", Props: map[string]any{"id": "u1"}},
		},
		Zones: map[string][]model.BlockNode{
			"s1:section-content": {
				{Type: "TextBlock", Props: map[string]any{"id": "t1"}},
			},
		},
	}
	if err := ValidateTree(tree); err != nil {
		t.Fatalf("ValidateTree error: %v", err)
	}
}

func TestValidateTree_Structural(t *testing.T) {
	tests := []struct {
		name string
		tree *model.BlockTree
		want string
	}{
		{
			name: "missing_type",
			tree: &model.BlockTree{Content: []model.BlockNode{
				{Props: map[string]any{"id": "x"}},
			}},
			want: "no type",
		},
		{
			name: "missing_props",
			tree: &model.BlockTree{Content: []model.BlockNode{
				{Type: "TextBlock"},
			}},
			want: "no props",
		},
		{
			name: "missing_id",
			tree: &model.BlockTree{Content: []model.BlockNode{
				{Type: "TextBlock", Props: map[string]any{}},
			}},
			want: "no string id",
		},
		{
			name: "non_string_id",
			tree: &model.BlockTree{Content: []model.BlockNode{
				{Type: "TextBlock", Props: map[string]any{"id": 7}},
			}},
			want: "no string id",
		},
		{
			name: "duplicate_id",
			tree: &model.BlockTree{Content: []model.BlockNode{
				{Type: "TextBlock", Props: map[string]any{"id": "x"}},
				{Type: "TextBlock", Props: map[string]any{"id": "x"}},
			}},
			want: "duplicate",
		},
		{
			name: "malformed_zone_key",
			tree: &model.BlockTree{
				Content: []model.BlockNode{{Type: "GridBlock", Props: map[string]any{"id": "g1"}}},
				Zones: map[string][]model.BlockNode{
					"nozone": {{Type: "TextBlock", Props: map[string]any{"id": "t1"}}},
				},
			},
			want: "malformed zone key",
		},
		{
			name: "orphan_zone_parent",
			tree: &model.BlockTree{
				Content: []model.BlockNode{{Type: "GridBlock", Props: map[string]any{"id": "g1"}}},
				Zones: map[string][]model.BlockNode{
					"ghost:grid-content": {{Type: "TextBlock", Props: map[string]any{"id": "t1"}}},
				},
			},
			want: "not in tree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTree(tt.tree)
			if err == nil {
				t.Fatal("ValidateTree should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateTree_DepthLimit(t *testing.T) {
	build := func(depth int) *model.BlockTree {
		tree := &model.BlockTree{
			Content: []model.BlockNode{{Type: "SectionBlock", Props: map[string]any{"id": "n1"}}},
			Zones:   map[string][]model.BlockNode{},
		}
		for i := 1; i < depth; i++ {
			parent := fmt.Sprintf("n%d", i)
			child := fmt.Sprintf("n%d", i+1)
			tree.Zones[model.ZoneKey(parent, "section-content")] = []model.BlockNode{
				{Type: "SectionBlock", Props: map[string]any{"id": child}},
			}
		}
		return tree
	}

	if err := ValidateTree(build(MaxTreeDepth)); err != nil {
		t.Errorf("depth %d should validate: %v", MaxTreeDepth, err)
	}
	if err := ValidateTree(build(MaxTreeDepth + 1)); err == nil {
		t.Errorf("depth %d should be rejected", MaxTreeDepth+1)
	}
}

func TestValidateTree_Cycle(t *testing.T) {
	// a's zone contains b, b's zone contains a: neither is reachable from
	// the content list.
	tree := &model.BlockTree{
		Content: []model.BlockNode{{Type: "TextBlock", Props: map[string]any{"id": "root"}}},
		Zones: map[string][]model.BlockNode{
			"a:zone": {{Type: "SectionBlock", Props: map[string]any{"id": "b"}}},
			"b:zone": {{Type: "SectionBlock", Props: map[string]any{"id": "a"}}},
		},
	}
	if err := ValidateTree(tree); err == nil {
		t.Fatal("cyclic zones should be rejected")
	}
}
