// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/olegiv/opages-go/internal/model"
)

// MaxTreeDepth bounds zone nesting; trees deeper than this are rejected
// at the save boundary and refused at render time.
const MaxTreeDepth = 64

// esc HTML-escapes text for element content and attribute values.
func esc(s string) string {
	return template.HTMLEscapeString(s)
}

// RenderContext is what a block renderer sees: the node, its effective
// props and a way to render its named zones.
type RenderContext struct {
	Node  model.BlockNode
	Props Props

	renderer *Renderer
	tree     *model.BlockTree
	depth    int
}

// Zone renders the children of the node's named zone in document order.
func (rc *RenderContext) Zone(w io.Writer, zone string) error {
	children := rc.tree.ZoneChildren(rc.Node.ID(), zone)
	for _, child := range children {
		if err := rc.renderer.renderNode(w, rc.tree, child, rc.depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Renderer turns stored block trees into HTML using a registry's
// definitions.
type Renderer struct {
	registry *Registry
}

// NewRenderer creates a renderer over the given registry.
func NewRenderer(registry *Registry) *Renderer {
	return &Renderer{registry: registry}
}

// RenderTree writes the HTML for a whole page document. Unknown kinds
// render as inert placeholders; their subtrees are skipped while
// siblings render normally.
func (r *Renderer) RenderTree(w io.Writer, tree *model.BlockTree) error {
	for _, node := range tree.Content {
		if err := r.renderNode(w, tree, node, 1); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, tree *model.BlockTree, node model.BlockNode, depth int) error {
	if depth > MaxTreeDepth {
		return fmt.Errorf("block tree exceeds maximum depth %d at node %q", MaxTreeDepth, node.ID())
	}

	def, ok := r.registry.Get(node.Type)
	if !ok {
		_, err := fmt.Fprintf(w, `<div class="unknown-block" data-kind="%s"></div>`, esc(node.Type))
		return err
	}

	rc := &RenderContext{
		Node:     node,
		Props:    MergeDefaults(def.Defaults, node.Props),
		renderer: r,
		tree:     tree,
		depth:    depth,
	}
	if err := def.Render(w, rc); err != nil {
		return fmt.Errorf("rendering %s %q: %w", node.Type, node.ID(), err)
	}
	return nil
}

// RenderTreeString is RenderTree into a string, for cache fills.
func (r *Renderer) RenderTreeString(tree *model.BlockTree) (string, error) {
	var sb strings.Builder
	if err := r.RenderTree(&sb, tree); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// classMap picks a CSS class by prop value with a fallback for values
// outside the option set.
func classMap(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
