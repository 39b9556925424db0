// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
	"net/url"
	"strings"
)

var heroHeightClasses = map[string]string{
	"small":      "h-64 md:h-80",
	"medium":     "h-96 md:h-[500px]",
	"large":      "h-[600px] md:h-[700px]",
	"fullscreen": "h-screen",
}

// validImageURL accepts absolute URLs that plausibly point at an image.
func validImageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	lower := strings.ToLower(u.Path)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return strings.Contains(u.Host, "googleusercontent") || strings.Contains(u.Host, "imgur")
}

func heroBlock() *Definition {
	fields := []Field{
		{Name: "title", Label: "Hero Title", Type: FieldText},
		{Name: "subtitle", Label: "Hero Subtitle", Type: FieldTextarea},
		{Name: "backgroundType", Label: "Background Type", Type: FieldRadio, Options: opts(
			"Image", "image", "Color", "color")},
		{Name: "backgroundImage", Label: "Background Image URL", Type: FieldText},
		{Name: "backgroundColor", Label: "Background Color", Type: FieldSelect, Options: opts(
			"White", "bg-white", "Gray 50", "bg-gray-50", "Gray 900", "bg-gray-900",
			"Blue 600", "bg-blue-600", "Red 600", "bg-red-600", "Green 600", "bg-green-600")},
		{Name: "height", Label: "Hero Height", Type: FieldSelect, Options: opts(
			"Small (300px)", "small", "Medium (500px)", "medium",
			"Large (700px)", "large", "Fullscreen", "fullscreen")},
		{Name: "overlayOpacity", Label: "Overlay Opacity (0-100)", Type: FieldNumber, Min: intPtr(0), Max: intPtr(100)},
		{Name: "contentAlignment", Label: "Content Alignment", Type: FieldRadio, Options: opts(
			"Left", "left", "Center", "center", "Right", "right")},
		{Name: "ctaText", Label: "CTA Button Text (Optional)", Type: FieldText},
		{Name: "ctaLink", Label: "CTA Button Link", Type: FieldText},
		{Name: "ctaTarget", Label: "CTA Open in", Type: FieldRadio, Options: opts(
			"Same Tab", "_self", "New Tab", "_blank")},
	}

	return &Definition{
		Name:   "HeroBlock",
		Label:  "Hero",
		Fields: fields,
		Defaults: map[string]any{
			"title":            "Welcome to Our Site",
			"subtitle":         "Build amazing content with our visual editor",
			"backgroundType":   "image",
			"backgroundImage":  "",
			"backgroundColor":  "bg-gray-900",
			"height":           "medium",
			"overlayOpacity":   50,
			"contentAlignment": "center",
			"ctaText":          "Get Started",
			"ctaLink":          "#",
			"ctaTarget":        "_self",
		},
		Resolve: func(props Props) []Field {
			hidden := make([]string, 0, 4)
			switch props.String("backgroundType") {
			case "color":
				hidden = append(hidden, "backgroundImage", "overlayOpacity")
			default:
				hidden = append(hidden, "backgroundColor")
			}
			if props.String("ctaText") == "" {
				hidden = append(hidden, "ctaLink", "ctaTarget")
			}
			return withoutFields(fields, hidden...)
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			isImage := rc.Props.String("backgroundType") != "color"
			bgImage := rc.Props.String("backgroundImage")
			imageOK := isImage && validImageURL(bgImage)

			bgClass := "bg-gray-900"
			if !isImage {
				bgClass = esc(rc.Props.String("backgroundColor"))
			}
			style := ""
			if imageOK {
				style = fmt.Sprintf(` style="background-image:url('%s');background-size:cover;background-position:center"`, esc(bgImage))
			}

			height := classMap(heroHeightClasses, rc.Props.String("height"), heroHeightClasses["medium"])
			align := classMap(alignmentClasses, rc.Props.String("contentAlignment"), "text-center")

			if _, err := fmt.Fprintf(w,
				`<div class="relative %s flex items-center justify-center overflow-hidden %s"%s role="banner">`,
				height, bgClass, style); err != nil {
				return err
			}
			if imageOK {
				opacity := rc.Props.Int("overlayOpacity")
				if opacity < 0 {
					opacity = 0
				} else if opacity > 100 {
					opacity = 100
				}
				if _, err := fmt.Fprintf(w,
					`<div class="absolute inset-0 bg-black" style="opacity:%.2f" aria-hidden="true"></div>`,
					float64(opacity)/100); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<div class="relative z-10 text-white p-8 max-w-4xl mx-auto w-full %s"><h1 class="text-4xl md:text-5xl lg:text-6xl font-bold mb-6 drop-shadow-lg">%s</h1><p class="text-lg md:text-xl lg:text-2xl mb-8 opacity-95 drop-shadow-md">%s</p>`,
				align, esc(rc.Props.String("title")), esc(rc.Props.String("subtitle"))); err != nil {
				return err
			}

			ctaText, ctaLink := rc.Props.String("ctaText"), rc.Props.String("ctaLink")
			if ctaText != "" && ctaLink != "" {
				target := rc.Props.String("ctaTarget")
				rel := ""
				if target == "_blank" {
					rel = ` rel="noopener noreferrer"`
				}
				if _, err := fmt.Fprintf(w,
					`<a href="%s" target="%s"%s class="inline-block px-8 py-3 bg-blue-600 hover:bg-blue-700 text-white font-semibold rounded-lg transition-colors duration-200 drop-shadow-md">%s</a>`,
					esc(ctaLink), esc(target), rel, esc(ctaText)); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</div></div>`)
			return err
		},
	}
}
