// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package blocks

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

var aspectRatioClasses = map[string]string{
	"original": "",
	"square":   "aspect-square",
	"video":    "aspect-video",
	"portrait": "aspect-[3/4]",
}

func imageBlock() *Definition {
	return &Definition{
		Name:  "ImageBlock",
		Label: "Image",
		Fields: []Field{
			{Name: "src", Label: "Image URL", Type: FieldText},
			{Name: "alt", Label: "Alt Text", Type: FieldText},
			{Name: "width", Label: "Image Width", Type: FieldSelect, Options: opts(
				"Auto", "auto", "50%", "50%", "75%", "75%", "100%", "100%")},
			{Name: "aspectRatio", Label: "Aspect Ratio", Type: FieldSelect, Options: opts(
				"Original", "original", "Square (1:1)", "square", "Video (16:9)", "video", "Portrait (3:4)", "portrait")},
			{Name: "borderRadius", Label: "Border Radius", Type: FieldSelect, Options: opts(
				"None", "none", "Small", "small", "Medium", "medium", "Large", "large")},
		},
		Defaults: map[string]any{
			"src":          "https://via.placeholder.com/800x600",
			"alt":          "Image",
			"width":        "100%",
			"aspectRatio":  "original",
			"borderRadius": "none",
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			_, err := fmt.Fprintf(w,
				`<div class="p-4"><img src="%s" alt="%s" style="width:%s" class="%s %s object-cover"></div>`,
				esc(rc.Props.String("src")), esc(rc.Props.String("alt")), esc(rc.Props.String("width")),
				classMap(aspectRatioClasses, rc.Props.String("aspectRatio"), ""),
				classMap(borderRadiusClasses, rc.Props.String("borderRadius"), "rounded-none"))
			return err
		},
	}
}

var youtubeIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]{11})`)

// youtubeVideoID extracts the 11-character video id from a YouTube URL.
func youtubeVideoID(url string) string {
	if url == "" {
		return ""
	}
	if m := youtubeIDPattern.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

func youtubeBlock() *Definition {
	return &Definition{
		Name:  "YouTubeBlock",
		Label: "YouTube",
		Fields: []Field{
			{Name: "videoUrl", Label: "YouTube URL (Full Link)", Type: FieldText},
			{Name: "title", Label: "Video Title (for accessibility)", Type: FieldText},
		},
		Defaults: map[string]any{
			"videoUrl": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			"title":    "YouTube Video",
		},
		Render: func(w io.Writer, rc *RenderContext) error {
			videoID := youtubeVideoID(rc.Props.String("videoUrl"))
			if videoID == "" {
				_, err := io.WriteString(w,
					`<div class="w-full p-4 bg-gray-100 rounded-lg text-center text-gray-500">Enter a valid YouTube URL</div>`)
				return err
			}
			title := rc.Props.String("title")
			if strings.TrimSpace(title) == "" {
				title = "YouTube Video"
			}
			_, err := fmt.Fprintf(w,
				`<div class="w-full max-w-4xl mx-auto p-4"><div class="rounded-xl overflow-hidden shadow-lg aspect-video"><iframe src="https://www.youtube-nocookie.com/embed/%s" title="%s" loading="lazy" allowfullscreen class="w-full h-full"></iframe></div></div>`,
				esc(videoID), esc(title))
			return err
		},
	}
}
