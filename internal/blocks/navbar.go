// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

func navbarBlock() *Definition {
	return &Definition{
		Name:  "NavbarBlock",
		Label: "Navbar",
		Fields: []Field{
			{Name: "logoText", Label: "Logo Text", Type: FieldText},
			{Name: "links", Label: "Links", Type: FieldArray, Summary: "label", ArrayFields: []Field{
				{Name: "label", Label: "Label", Type: FieldText},
				{Name: "href", Label: "Link", Type: FieldText},
			}},
			{Name: "backgroundColor", Label: "Background Color", Type: FieldSelect, Options: opts(
				"White", "bg-white", "Gray 800", "bg-gray-800", "Blue 600", "bg-blue-600", "Black", "bg-black")},
			{Name: "textColor", Label: "Text Color", Type: FieldSelect, Options: opts(
				"Gray 900", "text-gray-900", "White", "text-white")},
			{Name: "fixed", Label: "Fixed at Top", Type: FieldRadio, Options: opts(
				"Yes", "true", "No", "false")},
		},
		Defaults: map[string]any{
			"logoText": "MyBrand",
			"links": []any{
				map[string]any{"label": "Home", "href": "/"},
				map[string]any{"label": "About", "href": "/about"},
				map[string]any{"label": "Contact", "href": "/contact"},
			},
			"backgroundColor": "bg-white",
			"textColor":       "text-gray-900",
			"fixed":           "false",
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			position := "relative"
			if rc.Props.Flag("fixed") {
				position = "fixed top-0 left-0 right-0 z-50"
			}
			if _, err := fmt.Fprintf(w,
				`<nav class="%s %s %s shadow-md"><div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"><div class="flex items-center justify-between h-16"><div class="flex-shrink-0 font-bold text-xl">%s</div><div class="flex items-baseline space-x-4">`,
				esc(rc.Props.String("backgroundColor")), esc(rc.Props.String("textColor")),
				position, esc(rc.Props.String("logoText"))); err != nil {
				return err
			}
			for _, link := range rc.Props.Items("links") {
				label, _ := link["label"].(string)
				href, _ := link["href"].(string)
				if _, err := fmt.Fprintf(w,
					`<a href="%s" class="px-3 py-2 rounded-md text-sm font-medium hover:opacity-80 transition-opacity">%s</a>`,
					esc(href), esc(label)); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</div></div></div></nav>`)
			return err
		},
	}
}

func footerBlock() *Definition {
	return &Definition{
		Name:  "FooterBlock",
		Label: "Footer",
		Fields: []Field{
			{Name: "text", Label: "Footer Text", Type: FieldText},
			{Name: "textColor", Label: "Text Color", Type: FieldSelect, Options: opts(
				"White", "text-white", "Gray", "text-gray-300", "Black", "text-black")},
			{Name: "backgroundColor", Label: "Background Color", Type: FieldSelect, Options: opts(
				"Black", "bg-black", "Gray 900", "bg-gray-900", "Gray 800", "bg-gray-800", "White", "bg-white")},
			{Name: "socialLinks", Label: "Social Links", Type: FieldArray, Summary: "href", ArrayFields: []Field{
				{Name: "icon", Label: "Icon URL (Image)", Type: FieldText},
				{Name: "href", Label: "Link URL", Type: FieldText},
			}},
		},
		Defaults: map[string]any{
			"text":            "Follow us",
			"textColor":       "text-white",
			"backgroundColor": "bg-black",
			"socialLinks":     []any{},
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			if _, err := fmt.Fprintf(w,
				`<footer class="%s py-8"><div class="max-w-6xl mx-auto px-4 flex flex-col md:flex-row items-center justify-between gap-6"><div class="text-xl font-bold %s text-center md:text-left">%s</div><div class="flex items-center gap-4">`,
				esc(rc.Props.String("backgroundColor")), esc(rc.Props.String("textColor")),
				esc(rc.Props.String("text"))); err != nil {
				return err
			}
			for _, link := range rc.Props.Items("socialLinks") {
				icon, _ := link["icon"].(string)
				href, _ := link["href"].(string)
				if _, err := fmt.Fprintf(w,
					`<a href="%s" target="_blank" rel="noopener noreferrer" class="transition-transform hover:scale-110"><img src="%s" alt="Social Icon" width="40" height="40" class="object-contain rounded-lg"></a>`,
					esc(href), esc(icon)); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</div></div></footer>`)
			return err
		},
	}
}
