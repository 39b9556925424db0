// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

func spacerBlock() *Definition {
	return &Definition{
		Name:  "SpacerBlock",
		Label: "Spacer",
		Fields: []Field{
			{Name: "height", Label: "Desktop Height (px)", Type: FieldNumber, Min: intPtr(0), Max: intPtr(200)},
			{Name: "mobileHeight", Label: "Mobile Height (px, optional)", Type: FieldNumber, Min: intPtr(0), Max: intPtr(200)},
		},
		Defaults: map[string]any{
			"height":       48,
			"mobileHeight": 24,
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			height := rc.Props.Int("mobileHeight")
			if height == 0 {
				height = rc.Props.Int("height")
			}
			if height < 0 {
				height = 0
			} else if height > 200 {
				height = 200
			}
			_, err := fmt.Fprintf(w, `<div class="w-full" style="height:%dpx"></div>`, height)
			return err
		},
	}
}

var dividerSpacingClasses = map[string]string{
	"small":  "my-4",
	"medium": "my-8",
	"large":  "my-12",
}

var dividerStyleClasses = map[string]string{
	"solid":  "border-solid",
	"dashed": "border-dashed",
	"dotted": "border-dotted",
}

func dividerBlock() *Definition {
	return &Definition{
		Name:  "DividerBlock",
		Label: "Divider",
		Fields: []Field{
			{Name: "style", Label: "Line Style", Type: FieldSelect, Options: opts(
				"Solid", "solid", "Dashed", "dashed", "Dotted", "dotted")},
			{Name: "color", Label: "Line Color", Type: FieldSelect, Options: opts(
				"Gray 200", "border-gray-200", "Gray 300", "border-gray-300", "Blue 200", "border-blue-200")},
			{Name: "thickness", Label: "Thickness (px)", Type: FieldNumber, Min: intPtr(1), Max: intPtr(10)},
			{Name: "spacing", Label: "Spacing", Type: FieldSelect, Options: opts(
				"Small", "small", "Medium", "medium", "Large", "large")},
		},
		Defaults: map[string]any{
			"style":     "solid",
			"color":     "border-gray-200",
			"thickness": 1,
			"spacing":   "medium",
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			thickness := rc.Props.Int("thickness")
			if thickness < 1 {
				thickness = 1
			} else if thickness > 10 {
				thickness = 10
			}
			_, err := fmt.Fprintf(w, `<div class="w-full %s"><hr class="%s %s" style="border-width:%dpx"></div>`,
				classMap(dividerSpacingClasses, rc.Props.String("spacing"), "my-8"),
				esc(rc.Props.String("color")),
				classMap(dividerStyleClasses, rc.Props.String("style"), "border-solid"),
				thickness)
			return err
		},
	}
}
