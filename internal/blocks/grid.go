// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
)

var gapClasses = map[string]string{
	"none":   "gap-0",
	"small":  "gap-2",
	"medium": "gap-4",
	"large":  "gap-8",
}

var itemAlignmentClasses = map[string]string{
	"start":   "items-start",
	"center":  "items-center",
	"end":     "items-end",
	"stretch": "items-stretch",
}

// GridZone is the named zone holding a grid's cells.
const GridZone = "grid-content"

func gridBlock() *Definition {
	fields := []Field{
		{Name: "columns", Label: "Number of Columns (desktop)", Type: FieldNumber, Min: intPtr(1), Max: intPtr(6)},
		{Name: "gap", Label: "Gap Size", Type: FieldSelect, Options: opts(
			"None", "none", "Small", "small", "Medium", "medium", "Large", "large")},
		{Name: "responsive", Label: "Responsive Layout (stack on mobile)", Type: FieldSelect, Options: opts(
			"Enabled", "true", "Disabled", "false")},
		{Name: "itemAlignment", Label: "Items Alignment", Type: FieldSelect, Options: opts(
			"Start", "start", "Center", "center", "End", "end", "Stretch", "stretch")},
		{Name: "minColWidth", Label: "Minimum Column Width (CSS, e.g. '200px')", Type: FieldText},
	}

	return &Definition{
		Name:   "GridBlock",
		Label:  "Grid",
		Fields: fields,
		Defaults: map[string]any{
			"columns":       3,
			"gap":           "medium",
			"responsive":    "true",
			"itemAlignment": "start",
			"minColWidth":   "200px",
		},
		Zones: []string{GridZone},
		Resolve: func(props Props) []Field {
			// Minimum column width only applies to the fixed layout.
			if props.Flag("responsive") {
				return withoutFields(fields, "minColWidth")
			}
			return fields
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			columns := rc.Props.Int("columns")
			if columns < 1 {
				columns = 1
			} else if columns > 6 {
				columns = 6
			}
			gap := classMap(gapClasses, rc.Props.String("gap"), "gap-4")
			align := classMap(itemAlignmentClasses, rc.Props.String("itemAlignment"), "items-start")

			var gridClass string
			if rc.Props.Flag("responsive") {
				gridClass = fmt.Sprintf("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-%d %s %s", columns, gap, align)
			} else {
				gridClass = fmt.Sprintf("grid grid-cols-%d %s %s", columns, gap, align)
			}

			style := ""
			if mcw := rc.Props.String("minColWidth"); mcw != "" && !rc.Props.Flag("responsive") {
				style = fmt.Sprintf(` style="grid-auto-columns:minmax(%s, 1fr)"`, esc(mcw))
			}

			if _, err := fmt.Fprintf(w, `<div class="p-4"><div class="%s"%s>`, gridClass, style); err != nil {
				return err
			}
			if err := rc.Zone(w, GridZone); err != nil {
				return err
			}
			_, err := io.WriteString(w, `</div></div>`)
			return err
		},
	}
}
