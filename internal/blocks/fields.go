// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package blocks defines the block catalog: field schemas, default props,
// per-kind field resolution and server-side rendering of block trees.
package blocks

import "strconv"

// FieldType enumerates the editor input widgets a field can use.
type FieldType string

// Field types understood by the editor surface.
const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRadio    FieldType = "radio"
	FieldArray    FieldType = "array"
)

// Option is a single choice of a select or radio field.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Field describes one editable property of a block kind.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Options     []Option  `json:"options,omitempty"`
	Min         *int      `json:"min,omitempty"`
	Max         *int      `json:"max,omitempty"`
	ArrayFields []Field   `json:"arrayFields,omitempty"`

	// Summary names the item prop an array field labels its entries by
	// on the editing surface. Empty means the field's label is used.
	Summary string `json:"summary,omitempty"`
}

func intPtr(v int) *int { return &v }

func opts(pairs ...string) []Option {
	options := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		options = append(options, Option{Label: pairs[i], Value: pairs[i+1]})
	}
	return options
}

// withoutFields returns fields minus the named ones, preserving order.
// Resolvers use it to hide properties that do not apply to the current
// prop values.
func withoutFields(fields []Field, names ...string) []Field {
	hidden := make(map[string]bool, len(names))
	for _, n := range names {
		hidden[n] = true
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !hidden[f.Name] {
			out = append(out, f)
		}
	}
	return out
}

// Props is the effective property set of a placed block: kind defaults
// overlaid by whatever the document stores for the node.
type Props map[string]any

// MergeDefaults overlays stored props on top of defaults, key by key.
// A key present in stored wins even when its value is the zero value;
// absent keys fall back to the default. Neither input is mutated.
func MergeDefaults(defaults map[string]any, stored map[string]any) Props {
	merged := make(Props, len(defaults)+len(stored))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range stored {
		merged[k] = v
	}
	return merged
}

// String returns the string value of a prop, or "" when absent or not a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the integer value of a prop. JSON numbers decode as
// float64, so both are accepted.
func (p Props) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// Flag reads a stringly-typed boolean prop ("true"/"false").
func (p Props) Flag(key string) bool {
	return p.String(key) == "true"
}

// Items returns the value of an array field as a list of item props.
func (p Props) Items(key string) []map[string]any {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}
