// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package identity talks to the external identity provider that owns
// user accounts and session tokens. oPages never stores credentials;
// it validates bearer tokens against the provider and revokes them on
// sign-out.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/olegiv/opages-go/internal/model"
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the identity provider API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the provider at baseURL.
// A non-positive timeout falls back to 10 seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// validateResponse represents the provider's session validation reply.
type validateResponse struct {
	Valid     bool      `json:"valid"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate checks a session token with the provider. An invalid or
// expired token yields (nil, nil); a non-nil error means the provider
// could not be reached and says nothing about the token.
func (c *Client) Validate(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/session/validate", nil)
	if err != nil {
		return nil, fmt.Errorf("building validation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session validation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// Parsed below.
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var result validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing validation response: %w", err)
	}

	if !result.Valid || result.Email == "" {
		return nil, nil
	}

	session := &model.Session{
		UserID:    result.UserID,
		Email:     strings.ToLower(result.Email),
		Name:      result.Name,
		ExpiresAt: result.ExpiresAt,
	}
	if session.Expired() {
		return nil, nil
	}
	return session, nil
}

// SignOut revokes a session token at the provider. A token the
// provider no longer knows is treated as already revoked.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/session/revoke", nil)
	if err != nil {
		return fmt.Errorf("building revocation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("session revocation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusUnauthorized, http.StatusNotFound:
		return nil
	default:
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
}
