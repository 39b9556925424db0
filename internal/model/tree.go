// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BlockNode is a single placed block: its kind name and its stored props.
// Props always carry a string "id" unique within the tree.
type BlockNode struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// ID returns the node's identifier from its props, or "" if absent.
func (n BlockNode) ID() string {
	id, _ := n.Props["id"].(string)
	return id
}

// RootProps holds the tree-level props (page title and the like).
type RootProps struct {
	Props map[string]any `json:"props,omitempty"`
}

// BlockTree is a page document: top-level content plus named zones.
// Zone keys take the form "<parentNodeID>:<zoneName>".
type BlockTree struct {
	Root    RootProps              `json:"root"`
	Content []BlockNode            `json:"content"`
	Zones   map[string][]BlockNode `json:"zones,omitempty"`
}

// ZoneKey builds the zones-map key for a node's named zone.
func ZoneKey(nodeID, zone string) string {
	return nodeID + ":" + zone
}

// SplitZoneKey returns the parent node id and zone name of a zones-map key.
func SplitZoneKey(key string) (nodeID, zone string, ok bool) {
	i := strings.LastIndex(key, ":")
	if i <= 0 || i == len(key)-1 {
		return "", "", false
	}
	return key[:i], key[i+1:], true
}

// ParseBlockTree decodes a stored tree. An empty or "{}" document yields
// an empty tree rather than an error so new paths start from a blank page.
func ParseBlockTree(data string) (*BlockTree, error) {
	tree := &BlockTree{}
	if strings.TrimSpace(data) == "" {
		return tree, nil
	}
	dec := json.NewDecoder(strings.NewReader(data))
	if err := dec.Decode(tree); err != nil {
		return nil, fmt.Errorf("decoding block tree: %w", err)
	}
	return tree, nil
}

// Encode serializes the tree for storage.
func (t *BlockTree) Encode() (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encoding block tree: %w", err)
	}
	return string(b), nil
}

// ZoneChildren returns the child nodes of a node's named zone.
func (t *BlockTree) ZoneChildren(nodeID, zone string) []BlockNode {
	if t.Zones == nil {
		return nil
	}
	return t.Zones[ZoneKey(nodeID, zone)]
}
