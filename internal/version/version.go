// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version carries the build identity stamped into the binary.
// The fields are set in main from ldflags and surfaced by the -version
// flag and the health endpoint.
package version

// Info identifies one build of the binary.
type Info struct {
	Version   string // git tag, or "dev" for untagged builds
	GitCommit string // short commit hash
	BuildTime string // RFC3339 build timestamp
}
