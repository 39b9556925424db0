// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

var headingLevels = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var alignmentClasses = map[string]string{
	"left":   "text-left",
	"center": "text-center",
	"right":  "text-right",
}

func headingBlock() *Definition {
	return &Definition{
		Name:  "HeadingBlock",
		Label: "Heading",
		Fields: []Field{
			{Name: "title", Label: "Title Text", Type: FieldText},
			{Name: "level", Label: "Heading Level", Type: FieldSelect, Options: opts(
				"H1", "h1", "H2", "h2", "H3", "h3", "H4", "h4", "H5", "h5", "H6", "h6")},
			{Name: "alignment", Label: "Text Alignment", Type: FieldRadio, Options: opts(
				"Left", "left", "Center", "center", "Right", "right")},
			{Name: "textColor", Label: "Text Color", Type: FieldSelect, Options: opts(
				"Gray 900", "text-gray-900", "Gray 700", "text-gray-700", "Gray 500", "text-gray-500",
				"Blue 600", "text-blue-600", "Red 600", "text-red-600", "Green 600", "text-green-600")},
		},
		Defaults: map[string]any{
			"title":     "Heading",
			"level":     "h2",
			"alignment": "left",
			"textColor": "text-gray-900",
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			level := rc.Props.String("level")
			if !headingLevels[level] {
				level = "h2"
			}
			align := classMap(alignmentClasses, rc.Props.String("alignment"), "text-left")
			_, err := fmt.Fprintf(w, `<div class="p-4 %s"><%s class="font-bold %s">%s</%s></div>`,
				align, level, esc(rc.Props.String("textColor")), esc(rc.Props.String("title")), level)
			return err
		},
	}
}
