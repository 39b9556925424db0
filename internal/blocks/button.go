// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

var buttonSizeClasses = map[string]string{
	"small":  "px-4 py-2 text-sm",
	"medium": "px-6 py-3 text-base",
	"large":  "px-8 py-4 text-lg",
}

var buttonVariantClasses = map[string]string{
	"primary":   "bg-blue-600 hover:bg-blue-700 text-white",
	"secondary": "bg-gray-600 hover:bg-gray-700 text-white",
	"outline":   "border-2 border-blue-600 text-blue-600 hover:bg-blue-50",
	"ghost":     "text-blue-600 hover:bg-blue-50",
}

// buttonIconPaths holds the SVG path data for the optional button icons.
var buttonIconPaths = map[string]string{
	"arrow-right": "M13 7l5 5m0 0l-5 5m5-5H6",
	"arrow-left":  "M11 17l-5-5m0 0l5-5m-5 5h12",
	"plus":        "M12 4v16m8-8H4",
	"check":       "M5 13l4 4L19 7",
}

func buttonIconSVG(icon string) string {
	path, ok := buttonIconPaths[icon]
	if !ok {
		return ""
	}
	return fmt.Sprintf(`<svg class="inline-block w-4 h-4 align-middle" fill="none" stroke="currentColor" viewBox="0 0 24 24" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="2" d="%s"/></svg>`, path)
}

func buttonBlock() *Definition {
	fields := []Field{
		{Name: "text", Label: "Button Text", Type: FieldText},
		{Name: "variant", Label: "Button Style", Type: FieldSelect, Options: opts(
			"Primary", "primary", "Secondary", "secondary", "Outline", "outline", "Ghost", "ghost")},
		{Name: "size", Label: "Button Size", Type: FieldSelect, Options: opts(
			"Small", "small", "Medium", "medium", "Large", "large")},
		{Name: "link", Label: "Button Link", Type: FieldText},
		{Name: "target", Label: "Open Link", Type: FieldRadio, Options: opts(
			"Same Tab", "_self", "New Tab", "_blank")},
		{Name: "fullWidth", Label: "Full Width", Type: FieldSelect, Options: opts(
			"No", "false", "Yes", "true")},
		{Name: "icon", Label: "Icon", Type: FieldSelect, Options: opts(
			"None", "none", "Arrow Right", "arrow-right", "Arrow Left", "arrow-left",
			"Plus", "plus", "Check", "check")},
		{Name: "iconPosition", Label: "Icon Position", Type: FieldRadio, Options: opts(
			"Left", "left", "Right", "right")},
	}

	return &Definition{
		Name:   "ButtonBlock",
		Label:  "Button",
		Fields: fields,
		Defaults: map[string]any{
			"text":         "Click Me",
			"variant":      "primary",
			"size":         "medium",
			"link":         "#",
			"target":       "_self",
			"fullWidth":    "false",
			"icon":         "none",
			"iconPosition": "right",
		},
		Resolve: func(props Props) []Field {
			icon := props.String("icon")
			if icon == "" || icon == "none" {
				return withoutFields(fields, "iconPosition")
			}
			return fields
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			target := rc.Props.String("target")
			rel := ""
			if target == "_blank" {
				rel = ` rel="noopener noreferrer"`
			}
			wrapClass, widthClass := "", ""
			if rc.Props.Flag("fullWidth") {
				wrapClass, widthClass = " w-full", " block w-full"
			}

			label := esc(rc.Props.String("text"))
			if svg := buttonIconSVG(rc.Props.String("icon")); svg != "" {
				if rc.Props.String("iconPosition") == "left" {
					label = svg + " " + label
				} else {
					label = label + " " + svg
				}
			}

			_, err := fmt.Fprintf(w,
				`<div class="p-4%s"><a href="%s" target="%s"%s class="inline-block rounded-lg font-semibold transition-colors text-center %s %s%s">%s</a></div>`,
				wrapClass, esc(rc.Props.String("link")), esc(target), rel,
				classMap(buttonSizeClasses, rc.Props.String("size"), buttonSizeClasses["medium"]),
				classMap(buttonVariantClasses, rc.Props.String("variant"), buttonVariantClasses["primary"]),
				widthClass, label)
			return err
		},
	}
}
