// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"

	"github.com/olegiv/opages-go/internal/model"
)

// ValidateTree checks the structural integrity of a document before it
// is persisted: every node needs a kind name and a string id, zone keys
// must be well formed and reference nodes in the tree, and nesting must
// stay within MaxTreeDepth. Unknown kind names are allowed; the catalog
// can grow independently of stored documents.
func ValidateTree(tree *model.BlockTree) error {
	ids := make(map[string]bool)

	var checkNode func(n model.BlockNode, where string) error
	checkNode = func(n model.BlockNode, where string) error {
		if n.Type == "" {
			return fmt.Errorf("%s: node has no type", where)
		}
		if n.Props == nil {
			return fmt.Errorf("%s: node %q has no props", where, n.Type)
		}
		id := n.ID()
		if id == "" {
			return fmt.Errorf("%s: %s node has no string id", where, n.Type)
		}
		if ids[id] {
			return fmt.Errorf("%s: duplicate node id %q", where, id)
		}
		ids[id] = true
		return nil
	}

	for i, n := range tree.Content {
		if err := checkNode(n, fmt.Sprintf("content[%d]", i)); err != nil {
			return err
		}
	}
	for key, children := range tree.Zones {
		if _, _, ok := model.SplitZoneKey(key); !ok {
			return fmt.Errorf("zones[%q]: malformed zone key", key)
		}
		for i, n := range children {
			if err := checkNode(n, fmt.Sprintf("zones[%q][%d]", key, i)); err != nil {
				return err
			}
		}
	}

	// Zone parents must exist, and following parent links must terminate
	// inside the depth bound. A zone whose parent chain loops or whose
	// parent id is absent can never render.
	parentOf := make(map[string]string) // child zone key -> parent node id
	for key := range tree.Zones {
		nodeID, _, _ := model.SplitZoneKey(key)
		if !ids[nodeID] {
			return fmt.Errorf("zones[%q]: parent node %q not in tree", key, nodeID)
		}
		parentOf[key] = nodeID
	}

	depthOf := make(map[string]int)
	for _, n := range tree.Content {
		depthOf[n.ID()] = 1
	}
	// Resolve depths iteratively; anything unresolved after len(zones)
	// passes sits on a cycle.
	for pass := 0; pass <= len(tree.Zones); pass++ {
		progressed := false
		for key, children := range tree.Zones {
			parent := parentOf[key]
			pd, ok := depthOf[parent]
			if !ok {
				continue
			}
			for _, child := range children {
				if _, done := depthOf[child.ID()]; !done {
					depthOf[child.ID()] = pd + 1
					progressed = true
				}
			}
		}
		if !progressed {
			break
		}
	}
	for key, children := range tree.Zones {
		for _, child := range children {
			d, ok := depthOf[child.ID()]
			if !ok {
				return fmt.Errorf("zones[%q]: node %q is unreachable or part of a cycle", key, child.ID())
			}
			if d > MaxTreeDepth {
				return fmt.Errorf("zones[%q]: node %q exceeds maximum depth %d", key, child.ID(), MaxTreeDepth)
			}
		}
	}

	return nil
}
