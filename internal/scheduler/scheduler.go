// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance: sweeping expired
// session cache entries and pruning old audit events.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/model"
	"github.com/olegiv/opages-go/internal/service"
)

// Config holds scheduler configuration.
type Config struct {
	// SessionSweepInterval is how often expired session cache entries
	// are swept, in seconds.
	SessionSweepInterval int

	// EventRetentionDays is how long audit events are kept.
	// Non-positive disables the purge job.
	EventRetentionDays int
}

// Scheduler handles scheduled maintenance tasks.
type Scheduler struct {
	cron     *cron.Cron
	sessions *cache.SessionCache
	events   *service.EventService
	cfg      Config
	logger   *slog.Logger
}

// New creates a new scheduler instance.
func New(sessions *cache.SessionCache, events *service.EventService, cfg Config, logger *slog.Logger) *Scheduler {
	if cfg.SessionSweepInterval <= 0 {
		cfg.SessionSweepInterval = 60
	}
	return &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
		events:   events,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the maintenance jobs and begins the scheduler.
func (s *Scheduler) Start() error {
	sweepSpec := fmt.Sprintf("@every %ds", s.cfg.SessionSweepInterval)
	if _, err := s.cron.AddFunc(sweepSpec, s.sweepSessions); err != nil {
		return fmt.Errorf("registering session sweep: %w", err)
	}

	if s.cfg.EventRetentionDays > 0 {
		// Nightly, off the busy hours.
		if _, err := s.cron.AddFunc("30 3 * * *", s.purgeOldEvents); err != nil {
			return fmt.Errorf("registering event purge: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// sweepSessions drops expired session cache entries.
func (s *Scheduler) sweepSessions() {
	removed := s.sessions.Sweep()
	if removed == 0 {
		return
	}
	s.logger.Debug("swept expired sessions", "removed", removed, "remaining", s.sessions.Len())
	_ = s.events.LogCacheEvent(context.Background(), model.EventLevelInfo, "session cache sweep",
		nil, "", map[string]any{"removed": removed, "remaining": s.sessions.Len()})
}

// purgeOldEvents removes audit events past the retention window.
func (s *Scheduler) purgeOldEvents() {
	retention := time.Duration(s.cfg.EventRetentionDays) * 24 * time.Hour
	removed, err := s.events.DeleteOldEvents(context.Background(), retention)
	if err != nil {
		s.logger.Error("failed to purge old events", "error", err)
		return
	}
	if removed > 0 {
		s.logger.Info("purged old events", "removed", removed, "retention_days", s.cfg.EventRetentionDays)
		_ = s.events.LogSystemEvent(context.Background(), model.EventLevelInfo, "event retention purge",
			nil, "", map[string]any{"removed": removed, "retention_days": s.cfg.EventRetentionDays})
	}
}
