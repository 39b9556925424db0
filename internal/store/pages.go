// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/opages-go/internal/model"
)

const getPageByPath = `
SELECT id, path, data, created_at, updated_at
FROM pages
WHERE path = ?
`

// GetPageByPath returns the page stored at a path.
// Returns sql.ErrNoRows when no page exists there.
func (q *Queries) GetPageByPath(ctx context.Context, path string) (model.Page, error) {
	var p model.Page
	err := q.db.QueryRowContext(ctx, getPageByPath, path).Scan(
		&p.ID, &p.Path, &p.Data, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

const upsertPage = `
INSERT INTO pages (id, path, data, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
    data = excluded.data,
    updated_at = excluded.updated_at
RETURNING id
`

// UpsertPageParams holds the input for UpsertPage.
type UpsertPageParams struct {
	Path string
	Data string
}

// UpsertPage inserts the page document at a path, or replaces the
// document when the path already holds one. The path is the sole
// identity: the row id assigned on first insert never changes on
// subsequent saves.
func (q *Queries) UpsertPage(ctx context.Context, arg UpsertPageParams) (model.SaveResult, error) {
	candidate := uuid.New().String()
	now := time.Now()

	var id string
	err := q.db.QueryRowContext(ctx, upsertPage,
		candidate, arg.Path, arg.Data, now, now,
	).Scan(&id)
	if err != nil {
		return model.SaveResult{}, fmt.Errorf("upserting page %q: %w", arg.Path, err)
	}

	// The candidate id survives only when the insert branch ran.
	if id == candidate {
		return model.SaveResult{Created: true, UpsertedID: id}, nil
	}
	return model.SaveResult{}, nil
}

const listPagePaths = `
SELECT path
FROM pages
ORDER BY path
`

// ListPagePaths returns every stored page path in lexical order.
func (q *Queries) ListPagePaths(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listPagePaths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

const countPages = `
SELECT COUNT(*) FROM pages
`

// CountPages returns the number of stored pages.
func (q *Queries) CountPages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPages).Scan(&count)
	return count, err
}

const deletePageByPath = `
DELETE FROM pages WHERE path = ?
`

// DeletePageByPath removes the page at a path. Reports whether a row
// was removed.
func (q *Queries) DeletePageByPath(ctx context.Context, path string) (bool, error) {
	res, err := q.db.ExecContext(ctx, deletePageByPath, path)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
