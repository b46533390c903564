// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/yomira-docs/internal/platform/constants"
	"github.com/taibuivan/yomira-docs/internal/platform/sec"
)

// RedisRepository implements [Store] using Redis.
//
// Each session is one key (auth:session:<token>) holding the JSON claims,
// expiring with the session.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a new Redis-backed [Store].
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

// Set implements [Store].
func (repository *RedisRepository) Set(ctx context.Context, token string, claims *sec.AuthClaims, ttl time.Duration) error {
	payload, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := repository.client.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

// Get implements [Store].
func (repository *RedisRepository) Get(ctx context.Context, token string) (*sec.AuthClaims, error) {
	payload, err := repository.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	claims := &sec.AuthClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	return claims, nil
}

// Delete implements [Store].
func (repository *RedisRepository) Delete(ctx context.Context, token string) error {
	if err := repository.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return constants.RedisPrefixSession + token
}
