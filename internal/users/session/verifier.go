// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"errors"
	"strings"

	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

var (
	// ErrSessionsDisabled is returned for opaque tokens when no session store is configured.
	ErrSessionsDisabled = errors.New("session: opaque sessions are disabled")

	// ErrInvalidSession is returned when a stored session carries no user.
	ErrInvalidSession = errors.New("session: stored session has no user")
)

// Verifier resolves any accepted credential into [sec.AuthClaims].
// It satisfies middleware.TokenVerifier.
type Verifier struct {
	tokens   *sec.TokenService
	sessions Store
}

// NewVerifier builds a [Verifier]. sessions may be nil, in which case only
// signed access tokens are accepted.
func NewVerifier(tokens *sec.TokenService, sessions Store) *Verifier {
	return &Verifier{tokens: tokens, sessions: sessions}
}

// VerifyToken dispatches on the credential shape: three dot-separated
// segments are a JWT, anything else is an opaque session token.
func (verifier *Verifier) VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error) {
	if isJWT(token) {
		return verifier.tokens.VerifyToken(token)
	}

	if verifier.sessions == nil {
		return nil, ErrSessionsDisabled
	}

	claims, err := verifier.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if claims.UserID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func isJWT(token string) bool {
	return strings.Count(token, ".") == 2
}
