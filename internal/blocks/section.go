// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

var sectionPaddingClasses = map[string]string{
	"none":   "py-0",
	"small":  "py-8",
	"medium": "py-16",
	"large":  "py-24",
}

var contentWidthClasses = map[string]string{
	"narrow": "max-w-2xl",
	"medium": "max-w-4xl",
	"wide":   "max-w-6xl",
	"full":   "max-w-full",
}

// SectionZone is the named zone holding a section's content.
const SectionZone = "section-content"

func sectionBlock() *Definition {
	return &Definition{
		Name:  "SectionBlock",
		Label: "Section",
		Fields: []Field{
			{Name: "title", Label: "Section Title", Type: FieldText},
			{Name: "subtitle", Label: "Section Subtitle", Type: FieldTextarea},
			{Name: "backgroundColor", Label: "Background Color", Type: FieldSelect, Options: opts(
				"White", "bg-white", "Gray 50", "bg-gray-50", "Gray 100", "bg-gray-100", "Blue 50", "bg-blue-50")},
			{Name: "padding", Label: "Section Padding", Type: FieldSelect, Options: opts(
				"None", "none", "Small", "small", "Medium", "medium", "Large", "large")},
			{Name: "contentWidth", Label: "Content Width", Type: FieldSelect, Options: opts(
				"Narrow", "narrow", "Medium", "medium", "Wide", "wide", "Full Width", "full")},
		},
		Defaults: map[string]any{
			"title":           "Section Title",
			"subtitle":        "",
			"backgroundColor": "bg-white",
			"padding":         "medium",
			"contentWidth":    "wide",
		},
		Zones: []string{SectionZone},
		Render: func(w io.Writer, rc *RenderContext) error {
			if _, err := fmt.Fprintf(w, `<section class="%s %s"><div class="mx-auto px-4 %s">`,
				esc(rc.Props.String("backgroundColor")),
				classMap(sectionPaddingClasses, rc.Props.String("padding"), "py-16"),
				classMap(contentWidthClasses, rc.Props.String("contentWidth"), "max-w-6xl")); err != nil {
				return err
			}

			title, subtitle := rc.Props.String("title"), rc.Props.String("subtitle")
			if title != "" || subtitle != "" {
				if _, err := io.WriteString(w, `<div class="text-center mb-12">`); err != nil {
					return err
				}
				if title != "" {
					if _, err := fmt.Fprintf(w, `<h2 class="text-3xl font-bold mb-4">%s</h2>`, esc(title)); err != nil {
						return err
					}
				}
				if subtitle != "" {
					if _, err := fmt.Fprintf(w, `<p class="text-lg text-gray-600">%s</p>`, esc(subtitle)); err != nil {
						return err
					}
				}
				if _, err := io.WriteString(w, `</div>`); err != nil {
					return err
				}
			}

			if err := rc.Zone(w, SectionZone); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</div></section>`)
			return err
		},
	}
}
