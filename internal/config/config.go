// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"OPAGES_DB_PATH" envDefault:"./data/opages.db"`
	SessionSecret string `env:"OPAGES_SESSION_SECRET,required"`
	ServerHost    string `env:"OPAGES_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"OPAGES_SERVER_PORT" envDefault:"8080"`
	BaseURL       string `env:"OPAGES_BASE_URL" envDefault:"http://localhost:8080"`
	Env           string `env:"OPAGES_ENV" envDefault:"development"`
	LogLevel      string `env:"OPAGES_LOG_LEVEL" envDefault:"info"`

	// Identity provider configuration
	IdentityURL     string `env:"OPAGES_IDENTITY_URL,required"` // Base URL of the identity provider
	IdentityTimeout int    `env:"OPAGES_IDENTITY_TIMEOUT" envDefault:"10"`

	// Authorization allow-lists, comma-separated email addresses.
	// Kept raw so role checks always see the current environment value.
	AdminEmailList  string `env:"OPAGES_ADMIN_EMAILS"`
	EditorEmailList string `env:"OPAGES_EDITOR_EMAILS"`

	// Session cache configuration
	SessionCacheTTL      int `env:"OPAGES_SESSION_CACHE_TTL" envDefault:"300"`     // Seconds
	SessionSweepInterval int `env:"OPAGES_SESSION_SWEEP_INTERVAL" envDefault:"60"` // Seconds

	// Rendered page cache configuration
	RedisURL     string `env:"OPAGES_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"OPAGES_CACHE_PREFIX" envDefault:"opages:"` // Redis key prefix
	CacheTTL     int    `env:"OPAGES_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"OPAGES_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// CSRF trusted origins, comma-separated
	TrustedOrigins string `env:"OPAGES_TRUSTED_ORIGINS"`

	// Event log retention in days
	EventRetentionDays int `env:"OPAGES_EVENT_RETENTION_DAYS" envDefault:"90"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// AdminEmails returns the admin allow-list, parsed fresh on every call so
// changes to the environment value take effect without restarting sessions.
func (c Config) AdminEmails() []string {
	return splitEmails(c.AdminEmailList)
}

// EditorEmails returns the editor allow-list, parsed fresh on every call.
func (c Config) EditorEmails() []string {
	return splitEmails(c.EditorEmailList)
}

// TrustedOriginList returns the CSRF trusted origins.
func (c Config) TrustedOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.TrustedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func splitEmails(raw string) []string {
	var emails []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("OPAGES_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("OPAGES_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("OPAGES_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	if cfg.SessionCacheTTL < 1 {
		return nil, fmt.Errorf("OPAGES_SESSION_CACHE_TTL must be positive, got %d", cfg.SessionCacheTTL)
	}

	if cfg.IdentityURL == "" || !strings.HasPrefix(cfg.IdentityURL, "http") {
		return nil, fmt.Errorf("OPAGES_IDENTITY_URL must be an http(s) URL, got %q", cfg.IdentityURL)
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("OPAGES_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
