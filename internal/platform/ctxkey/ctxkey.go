// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys used by middleware and handlers.
//
// The unexported key type keeps these entries from colliding with string keys
// set by third-party packages.
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyPrincipal holds the authenticated caller ([*sec.AuthClaims]).
	KeyPrincipal key = "principal"

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
