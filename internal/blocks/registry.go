// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
	"sync"
)

// Definition describes one block kind: its schema, defaults, optional
// field resolver, named zones and server-side renderer.
type Definition struct {
	Name     string
	Label    string
	Fields   []Field
	Defaults map[string]any
	Zones    []string

	// Resolve returns the fields visible for the given props. It must be
	// pure: same props in, same fields out, no access to siblings or
	// ancestors. Nil means the static field list is always shown.
	Resolve func(props Props) []Field

	// Render writes the block's HTML. Child zones are rendered through
	// the context so container kinds stay ignorant of tree mechanics.
	Render func(w io.Writer, rc *RenderContext) error
}

// ResolveFields returns the visible fields for the given props.
func (d *Definition) ResolveFields(props Props) []Field {
	if d.Resolve == nil {
		return d.Fields
	}
	return d.Resolve(props)
}

// Registry maps block kind names to their definitions.
type Registry struct {
	kinds map[string]*Definition
	order []string
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Definition)}
}

// Register adds a block kind. Registering the same name twice is an error.
func (r *Registry) Register(d *Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.Name == "" {
		return fmt.Errorf("block definition has no name")
	}
	if _, exists := r.kinds[d.Name]; exists {
		return fmt.Errorf("block kind %q already registered", d.Name)
	}
	r.kinds[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns a block definition by kind name.
func (r *Registry) Get(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.kinds[name]
	return d, ok
}

// List returns all definitions in registration order.
func (r *Registry) List() []*Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.kinds[name])
	}
	return out
}

// Default returns a registry with the full built-in block catalog.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range []*Definition{
		headingBlock(),
		textBlock(),
		heroBlock(),
		gridBlock(),
		cardBlock(),
		sectionBlock(),
		buttonBlock(),
		spacerBlock(),
		dividerBlock(),
		imageBlock(),
		navbarBlock(),
		footerBlock(),
		youtubeBlock(),
	} {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
