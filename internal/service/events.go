// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic above the store, currently
// event logging for the audit trail.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/store"
	"github.com/olegiv/opages-go/internal/util"
)

// EventService provides event logging functionality.
type EventService struct {
	queries *store.Queries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{
		queries: store.New(db),
	}
}

// LogEvent creates a new event log entry. userEmail may be nil for
// events without a user context.
func (s *EventService) LogEvent(ctx context.Context, level, category, message string, userEmail *string, ipAddress string, metadata map[string]any) error {
	metadataJSON := "{}"
	if metadata != nil {
		if jsonBytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	_, err := s.queries.CreateEvent(ctx, store.CreateEventParams{
		Level:     level,
		Category:  category,
		Message:   message,
		UserEmail: util.NullStringFromPtr(userEmail),
		Metadata:  metadataJSON,
		IPAddress: ipAddress,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to log event", "error", err, "category", category)
		return err
	}

	return nil
}

// LogAuthEvent logs an authentication-related event.
func (s *EventService) LogAuthEvent(ctx context.Context, level, message string, userEmail *string, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryAuth, message, userEmail, ipAddress, metadata)
}

// LogPageEvent logs a page-related event.
func (s *EventService) LogPageEvent(ctx context.Context, level, message string, userEmail *string, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryPage, message, userEmail, ipAddress, metadata)
}

// LogSystemEvent logs a system-related event.
func (s *EventService) LogSystemEvent(ctx context.Context, level, message string, userEmail *string, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategorySystem, message, userEmail, ipAddress, metadata)
}

// LogCacheEvent logs a cache-related event.
func (s *EventService) LogCacheEvent(ctx context.Context, level, message string, userEmail *string, ipAddress string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryCache, message, userEmail, ipAddress, metadata)
}

// RecentEvents returns the newest events, up to limit.
func (s *EventService) RecentEvents(ctx context.Context, limit int64) ([]model.Event, error) {
	return s.queries.ListRecentEvents(ctx, limit)
}

// DeleteOldEvents removes events older than the specified duration and
// returns how many were removed.
func (s *EventService) DeleteOldEvents(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	return s.queries.DeleteOldEvents(ctx, cutoff)
}
