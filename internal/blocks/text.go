// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"bytes"
	"fmt"
	"io"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

	// Stored content is author-supplied; everything rendered from it is
	// sanitized against script injection.
	textPolicy = bluemonday.UGCPolicy()
)

// renderMarkdown converts block text content to sanitized HTML.
func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return textPolicy.Sanitize(buf.String()), nil
}

var fontSizeClasses = map[string]string{
	"small":  "text-sm",
	"medium": "text-base",
	"large":  "text-lg",
}

var lineHeightClasses = map[string]string{
	"tight":   "leading-tight",
	"normal":  "leading-normal",
	"relaxed": "leading-relaxed",
}

// hexColorPattern accepts #RGB, #RRGGBB and #RRGGBBAA values.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

func textBlock() *Definition {
	fields := []Field{
		{Name: "content", Label: "Text Content", Type: FieldTextarea},
		{Name: "colorMode", Label: "Color Mode", Type: FieldRadio, Options: opts(
			"Preset", "preset", "Custom Hex", "custom")},
		{Name: "textColor", Label: "Text Color (Preset)", Type: FieldSelect, Options: opts(
			"Gray 900", "text-gray-900", "Gray 700", "text-gray-700",
			"Gray 500", "text-gray-500", "Blue 600", "text-blue-600")},
		{Name: "customColor", Label: "Custom Color (Hex)", Type: FieldText},
		{Name: "fontSize", Label: "Font Size", Type: FieldSelect, Options: opts(
			"Small", "small", "Medium", "medium", "Large", "large")},
		{Name: "lineHeight", Label: "Line Height", Type: FieldSelect, Options: opts(
			"Tight", "tight", "Normal", "normal", "Relaxed", "relaxed")},
	}

	return &Definition{
		Name:   "TextBlock",
		Label:  "Text",
		Fields: fields,
		Defaults: map[string]any{
			"content":     "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
			"colorMode":   "preset",
			"textColor":   "text-gray-700",
			"customColor": "#000000",
			"fontSize":    "medium",
			"lineHeight":  "normal",
		},
		Resolve: func(props Props) []Field {
			if props.String("colorMode") == "custom" {
				return withoutFields(fields, "textColor")
			}
			return withoutFields(fields, "customColor")
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			html, err := renderMarkdown(rc.Props.String("content"))
			if err != nil {
				return err
			}

			colorClass, colorStyle := esc(rc.Props.String("textColor")), ""
			if rc.Props.String("colorMode") == "custom" {
				if hex := rc.Props.String("customColor"); hexColorPattern.MatchString(hex) {
					colorClass, colorStyle = "", fmt.Sprintf(` style="color:%s"`, hex)
				}
			}

			_, err = fmt.Fprintf(w, `<div class="p-4"><div class="%s %s %s"%s>%s</div></div>`,
				colorClass,
				classMap(fontSizeClasses, rc.Props.String("fontSize"), "text-base"),
				classMap(lineHeightClasses, rc.Props.String("lineHeight"), "leading-normal"),
				colorStyle,
				html)
			return err
		},
	}
}
