// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/opages-go/internal/auth"
	"github.com/olegiv/opages-go/internal/blocks"
	"github.com/olegiv/opages-go/internal/cache"
	"github.com/olegiv/opages-go/internal/config"
	"github.com/olegiv/opages-go/internal/handler"
	"github.com/olegiv/opages-go/internal/identity"
	"github.com/olegiv/opages-go/internal/logging"
	"github.com/olegiv/opages-go/internal/middleware"
	"github.com/olegiv/opages-go/internal/scheduler"
	"github.com/olegiv/opages-go/internal/service"
	"github.com/olegiv/opages-go/internal/store"
	"github.com/olegiv/opages-go/internal/version"
	"github.com/olegiv/opages-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "oPages - block-based page builder\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_IDENTITY_URL     Identity provider base URL (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_DB_PATH          SQLite database path (default: ./data/opages.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_ADMIN_EMAILS     Comma-separated admin allow-list\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_EDITOR_EMAILS    Comma-separated editor allow-list\n")
		_, _ = fmt.Fprintf(os.Stderr, "  OPAGES_REDIS_URL        Redis URL for distributed page caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nFor more information, see: https://github.com/olegiv/opages-go\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("opages %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env files if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the Event Log database
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Initialize cache manager: the session cache is always in memory,
	// the rendered-page cache follows the configured backend
	cacheManager, err := cache.NewManager(cache.ManagerOptions{
		SessionTTL: time.Duration(cfg.SessionCacheTTL) * time.Second,
		PageTTL:    time.Duration(cfg.CacheTTL) * time.Second,
		Backend: cache.BackendConfig{
			RedisURL:        cfg.RedisURL,
			Prefix:          cfg.CachePrefix,
			DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
			MaxSize:         cfg.CacheMaxSize,
			CleanupInterval: time.Minute,
		},
	})
	if err != nil {
		return fmt.Errorf("initializing cache manager: %w", err)
	}
	defer cacheManager.Stop()
	if cfg.UseRedisCache() {
		slog.Info("cache manager initialized", "backend", "redis", "url", cfg.RedisURL)
	} else {
		slog.Info("cache manager initialized", "backend", "memory")
	}

	// Identity provider client and session resolution
	provider := identity.NewClient(cfg.IdentityURL, time.Duration(cfg.IdentityTimeout)*time.Second)
	resolver := auth.NewResolver(provider, cacheManager.Sessions)
	authorizer := auth.NewAuthorizer(cfg)
	slog.Info("identity provider configured", "url", cfg.IdentityURL,
		"admins", len(cfg.AdminEmails()), "editors", len(cfg.EditorEmails()))

	eventService := service.NewEventService(db)

	// Block catalog
	registry := blocks.Default()
	slog.Info("block catalog loaded", "kinds", len(registry.List()))

	// Start scheduler for session sweeps and event log retention
	sched := scheduler.New(cacheManager.Sessions, eventService, scheduler.Config{
		SessionSweepInterval: cfg.SessionSweepInterval,
		EventRetentionDays:   cfg.EventRetentionDays,
	}, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Initialize handlers
	frontendHandler := handler.NewFrontendHandler(db, cacheManager.Pages, registry)
	editorHandler := handler.NewEditorHandler(db, resolver, authorizer, registry)
	apiHandler := handler.NewAPIHandler(db, cacheManager.Pages, resolver, authorizer, registry, eventService)
	authHandler := handler.NewAuthHandler(resolver, eventService, cfg.IdentityURL, !cfg.IsDevelopment())
	adminHandler := handler.NewAdminHandler(resolver, authorizer, eventService, cacheManager)
	healthHandler := handler.NewHealthHandler(db, cacheManager, versionInfo)

	// Create router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)

	// Security headers middleware (CSP, HSTS, X-Frame-Options, etc.)
	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	// Request path middleware for logging context
	r.Use(middleware.RequestPath)

	// Edit routing gate: /edit requests are rewritten into the editor
	// namespace, direct editor namespace GETs bounce home. Runs before
	// session loading so anonymous edits redirect without a provider
	// round trip.
	r.Use(middleware.EditGate)
	r.Use(middleware.LoadSession(resolver))

	// CSRF protection for state-changing routes
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	if len(cfg.TrustedOriginList()) > 0 {
		csrfConfig.TrustedOrigins = cfg.TrustedOriginList()
	}
	csrfMiddleware := middleware.CSRF(csrfConfig)

	// Health check route
	r.Get(handler.PathHealth, healthHandler.Health)

	// Auth routes (rate limited against credential probing)
	r.Group(func(r chi.Router) {
		r.Use(middleware.PerClientRateLimit(10, 20))
		r.Use(csrfMiddleware)
		r.Get(handler.PathSignIn, authHandler.SignIn)
		r.Get(handler.PathSignOut, authHandler.SignOut)
		r.Post(handler.PathSignOut, authHandler.SignOut)
	})

	// Editor namespace: the shell is reachable only through the gate
	// rewrite, the API is called by the shell
	r.Get(handler.PathEditorPrefix+"/*", editorHandler.ServeEditor)
	r.Group(func(r chi.Router) {
		r.Use(middleware.PerClientRateLimit(5, 10))
		r.Use(csrfMiddleware)
		r.Post(handler.PathEditorAPI, apiHandler.SavePage)
		r.Post(handler.PathEditorFields, apiHandler.ResolveFields)
		r.Post(handler.PathAdminEvents, adminHandler.ListEvents)
		r.Post(handler.PathAdminCacheClear, adminHandler.ClearCaches)
	})

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	staticHandler := middleware.StaticCache(31536000)(http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	r.Handle("/static/*", staticHandler)

	// Public pages: everything else renders from the store
	r.Get("/*", frontendHandler.ServePage)

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB max header size
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
