// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

/*
TestTokenService_RoundTrip verifies that a signed token verifies back to the same claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	key := generateKey(t)
	service := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "docs.test")

	token, err := service.GenerateAccessToken("user-1", "alice", "member", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "member", claims.Role)
}

/*
TestTokenService_Rejects covers expired, foreign-issuer and foreign-key tokens.
*/
func TestTokenService_Rejects(t *testing.T) {
	key := generateKey(t)
	service := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "docs.test")

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateAccessToken("user-1", "alice", "member", -time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other_issuer", func(t *testing.T) {
		other := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "elsewhere")
		token, err := other.GenerateAccessToken("user-1", "alice", "member", time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("other_key", func(t *testing.T) {
		otherKey := generateKey(t)
		other := sec.NewTokenServiceFromKeys(otherKey, &otherKey.PublicKey, "docs.test")
		token, err := other.GenerateAccessToken("user-1", "alice", "member", time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

/*
TestNewTokenService_VerifyOnly loads only a public key from disk; signing must be refused.
*/
func TestNewTokenService_VerifyOnly(t *testing.T) {
	key := generateKey(t)

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	publicPath := filepath.Join(t.TempDir(), "public.pem")
	require.NoError(t, os.WriteFile(publicPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER}), 0o600))

	service, err := sec.NewTokenService("", publicPath, "docs.test")
	require.NoError(t, err)

	_, err = service.GenerateAccessToken("user-1", "alice", "member", time.Minute)
	assert.ErrorIs(t, err, sec.ErrSigningDisabled)

	// A token signed with the matching private key still verifies.
	signer := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "docs.test")
	token, err := signer.GenerateAccessToken("user-1", "alice", "member", time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}
