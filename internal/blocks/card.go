// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

var shadowClasses = map[string]string{
	"none":   "",
	"small":  "shadow-sm",
	"medium": "shadow-md",
	"large":  "shadow-lg",
}

var borderRadiusClasses = map[string]string{
	"none":   "rounded-none",
	"small":  "rounded-sm",
	"medium": "rounded-md",
	"large":  "rounded-lg",
}

// CardZone is the named zone holding a card's extra content.
const CardZone = "card-content"

func cardBlock() *Definition {
	return &Definition{
		Name:  "CardBlock",
		Label: "Card",
		Fields: []Field{
			{Name: "title", Label: "Card Title", Type: FieldText},
			{Name: "description", Label: "Card Description", Type: FieldTextarea},
			{Name: "padding", Label: "Padding (px)", Type: FieldNumber, Min: intPtr(0), Max: intPtr(64)},
			{Name: "variant", Label: "Card Variant", Type: FieldSelect, Options: opts(
				"Outline", "border border-gray-200", "Background", "")},
			{Name: "bgColor", Label: "Background Color", Type: FieldSelect, Options: opts(
				"White", "bg-white", "Gray 50", "bg-gray-50", "Blue 50", "bg-blue-50",
				"Red 50", "bg-red-50", "Yellow 50", "bg-yellow-50", "Green 50", "bg-green-50")},
			{Name: "shadow", Label: "Shadow", Type: FieldSelect, Options: opts(
				"None", "none", "Small", "small", "Medium", "medium", "Large", "large")},
			{Name: "borderRadius", Label: "Border Radius", Type: FieldSelect, Options: opts(
				"None", "none", "Small", "small", "Medium", "medium", "Large", "large")},
		},
		Defaults: map[string]any{
			"title":        "Card",
			"description":  "Description",
			"padding":      24,
			"variant":      "",
			"bgColor":      "bg-white",
			"shadow":       "medium",
			"borderRadius": "medium",
		},
		Zones: []string{CardZone},
		Render: func(w io.Writer, rc *RenderContext) error {
			padding := rc.Props.Int("padding")
			if padding < 0 {
				padding = 0
			} else if padding > 64 {
				padding = 64
			}
			if _, err := fmt.Fprintf(w,
				`<div style="padding:%dpx" class="%s %s %s %s"><h3 class="text-xl font-semibold mb-2">%s</h3><p class="text-gray-600">%s</p>`,
				padding,
				esc(rc.Props.String("variant")),
				esc(rc.Props.String("bgColor")),
				classMap(shadowClasses, rc.Props.String("shadow"), "shadow-md"),
				classMap(borderRadiusClasses, rc.Props.String("borderRadius"), "rounded-md"),
				esc(rc.Props.String("title")),
				esc(rc.Props.String("description"))); err != nil {
				return err
			}
			if err := rc.Zone(w, CardZone); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</div>`)
			return err
		},
	}
}
