// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-docs/internal/platform/sec"
	"github.com/taibuivan/yomira-docs/internal/users/session"
)

// memoryStore is an in-memory [session.Store] without expiry.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]sec.AuthClaims
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]sec.AuthClaims)}
}

func (store *memoryStore) Set(_ context.Context, token string, claims *sec.AuthClaims, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.sessions[token] = *claims
	return nil
}

func (store *memoryStore) Get(_ context.Context, token string) (*sec.AuthClaims, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	claims, ok := store.sessions[token]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return &claims, nil
}

func (store *memoryStore) Delete(_ context.Context, token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.sessions, token)
	return nil
}

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKeys(key, &key.PublicKey, "docs.test")
}

func TestVerifier_AccessToken(t *testing.T) {
	ctx := context.Background()
	tokens := newTokenService(t)
	verifier := session.NewVerifier(tokens, nil)

	token, err := tokens.GenerateAccessToken("user-1", "alice", "member", time.Minute)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	_, err = verifier.VerifyToken(ctx, token+"x")
	assert.Error(t, err)
}

func TestVerifier_OpaqueSession(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	verifier := session.NewVerifier(newTokenService(t), store)

	require.NoError(t, store.Set(ctx, "9f2c41d07b", &sec.AuthClaims{UserID: "user-2", Username: "bob"}, time.Hour))

	claims, err := verifier.VerifyToken(ctx, "9f2c41d07b")
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims.UserID)
	assert.Equal(t, "bob", claims.Username)

	_, err = verifier.VerifyToken(ctx, "unknown")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "9f2c41d07b"))
	_, err = verifier.VerifyToken(ctx, "9f2c41d07b")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestVerifier_RejectsAnonymousSession(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	verifier := session.NewVerifier(newTokenService(t), store)

	require.NoError(t, store.Set(ctx, "empty", &sec.AuthClaims{}, time.Hour))

	_, err := verifier.VerifyToken(ctx, "empty")
	assert.ErrorIs(t, err, session.ErrInvalidSession)
}

func TestVerifier_SessionsDisabled(t *testing.T) {
	verifier := session.NewVerifier(newTokenService(t), nil)

	_, err := verifier.VerifyToken(context.Background(), "opaque-cookie-value")
	assert.ErrorIs(t, err, session.ErrSessionsDisabled)
}
