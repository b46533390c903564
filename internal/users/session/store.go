// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package session resolves request credentials into an authenticated principal.

Two credential kinds are accepted:

  - Signed access tokens (RS256 JWT), checked locally by sec.TokenService.
  - Opaque session tokens (the browser "auth_token" cookie), looked up in Redis.
*/
package session

import (
	"context"
	"time"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

// ErrSessionNotFound is returned when an opaque token is unknown or expired.
var ErrSessionNotFound = apperr.NotFound("Session")

// Store is the data access contract for opaque sessions.
type Store interface {

	// Set binds token to claims until ttl elapses.
	Set(ctx context.Context, token string, claims *sec.AuthClaims, ttl time.Duration) error

	// Get returns the claims bound to token, or [ErrSessionNotFound].
	Get(ctx context.Context, token string) (*sec.AuthClaims, error)

	// Delete revokes token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
