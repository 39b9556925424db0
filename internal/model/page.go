// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Page represents a stored page document: a block tree addressed by its
// URL path. Data holds the serialized tree exactly as last saved.
type Page struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveResult reports the outcome of an upsert in the shape editor
// clients expect: a first save carries the new document id, a
// subsequent save counts as one modification.
type SaveResult struct {
	Created    bool
	UpsertedID string
}

// ModifiedCount returns 0 for an insert and 1 for an update.
func (r SaveResult) ModifiedCount() int {
	if r.Created {
		return 0
	}
	return 1
}
