// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-docs/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the per-request logger and its default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Principal verifies that the authenticated caller round-trips through the context.
*/
func TestContext_Principal(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetPrincipal(ctx))

	ctx = ctxutil.WithPrincipal(ctx, &sec.AuthClaims{UserID: "user-123", Role: "member"})
	principal := ctxutil.GetPrincipal(ctx)

	require.NotNil(t, principal)
	assert.Equal(t, "user-123", principal.UserID)
	assert.Equal(t, "member", principal.Role)
}
