// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/yomira-docs/internal/platform/apperr"
	"github.com/taibuivan/yomira-docs/internal/platform/constants"
	"github.com/taibuivan/yomira-docs/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-docs/internal/platform/respond"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

// TokenVerifier resolves a raw credential into the caller's claims.
//
// Declared here so middleware does not depend on the session package and
// tests can inject a fake.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error)
}

// Authenticate resolves the caller from the request credentials.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>', else the session cookie.
//  2. No credential: the request proceeds as anonymous.
//  3. Otherwise verify it via [TokenVerifier]; failure answers 403.
//  4. Inject [*sec.AuthClaims] into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, err := credential(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Verification ───────────────────────────────────────────────
			claims, err := verifier.VerifyToken(request.Context(), token)
			if err != nil {
				ctxutil.GetLogger(request.Context()).Debug("credential_rejected", slog.Any("error", err))
				respond.Error(writer, request, apperr.Forbidden("Invalid or expired credentials"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, ctxutil.GetLogger(ctx).With(slog.String("user_id", claims.UserID)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that carry no principal.
//
// Must be registered AFTER [Authenticate]. It is the single authentication
// gate of a route group; handlers below it may assume a principal.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetPrincipal(request.Context()) == nil {
			respond.Error(writer, request, apperr.Forbidden("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// credential extracts the raw token, preferring the Authorization header.
func credential(request *http.Request) (string, error) {
	if authHeader := request.Header.Get(constants.HeaderAuthorization); authHeader != "" {
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			return "", apperr.Forbidden("Invalid authorization format")
		}
		return strings.TrimSpace(token), nil
	}

	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		return cookie.Value, nil
	}

	return "", nil
}
