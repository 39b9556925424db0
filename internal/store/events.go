// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/opages-go/internal/model"
)

const createEvent = `
INSERT INTO events (level, category, message, user_email, metadata, ip_address, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, level, category, message, user_email, metadata, ip_address, created_at
`

// CreateEventParams holds the input for CreateEvent.
type CreateEventParams struct {
	Level     string
	Category  string
	Message   string
	UserEmail sql.NullString
	Metadata  string
	IPAddress string
	CreatedAt time.Time
}

// CreateEvent appends an entry to the audit log.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) (model.Event, error) {
	var e model.Event
	err := q.db.QueryRowContext(ctx, createEvent,
		arg.Level, arg.Category, arg.Message, arg.UserEmail,
		arg.Metadata, arg.IPAddress, arg.CreatedAt,
	).Scan(
		&e.ID, &e.Level, &e.Category, &e.Message, &e.UserEmail,
		&e.Metadata, &e.IPAddress, &e.CreatedAt,
	)
	return e, err
}

const listRecentEvents = `
SELECT id, level, category, message, user_email, metadata, ip_address, created_at
FROM events
ORDER BY created_at DESC, id DESC
LIMIT ?
`

// ListRecentEvents returns the newest events first, up to limit.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, listRecentEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Level, &e.Category, &e.Message, &e.UserEmail,
			&e.Metadata, &e.IPAddress, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const deleteOldEvents = `
DELETE FROM events WHERE created_at < ?
`

// DeleteOldEvents removes events created before the cutoff and returns
// how many were removed.
func (q *Queries) DeleteOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteOldEvents, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countEvents = `
SELECT COUNT(*) FROM events
`

// CountEvents returns the number of stored events.
func (q *Queries) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countEvents).Scan(&count)
	return count, err
}
