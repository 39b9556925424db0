// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"fmt"
	"path"
	"strings"
)

// MaxPagePathLength bounds stored page paths.
const MaxPagePathLength = 512

// NormalizePagePath canonicalizes a page path: it must be rooted at "/",
// dot segments and duplicate slashes are collapsed, and the trailing slash
// is stripped everywhere except the root page itself.
func NormalizePagePath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("empty path")
	}
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("path %q must start with /", p)
	}
	if strings.ContainsAny(p, "?#") {
		return "", fmt.Errorf("path %q must not contain query or fragment", p)
	}

	cleaned := path.Clean(p)
	if cleaned != "/" {
		cleaned = strings.TrimSuffix(cleaned, "/")
	}
	if strings.HasPrefix(cleaned, "/..") {
		return "", fmt.Errorf("path %q escapes root", p)
	}
	if len(cleaned) > MaxPagePathLength {
		return "", fmt.Errorf("path exceeds %d characters", MaxPagePathLength)
	}
	return cleaned, nil
}

// SlugifyPagePath rewrites each path segment through Slugify, producing a
// canonical URL for user-entered page locations. Segments that slugify to
// nothing are dropped.
func SlugifyPagePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if s := Slugify(seg); s != "" {
			out = append(out, s)
		}
	}
	return "/" + strings.Join(out, "/")
}
