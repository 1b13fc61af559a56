package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "greenhouse:"

// TokenStore keeps the bearer token in Redis so several console processes
// can share one login.
// Key format: <prefix><key>
type TokenStore struct {
	client redis.Cmdable
	key    string
}

// NewTokenStore creates a TokenStore over the given Redis client.
func NewTokenStore(client redis.Cmdable, prefix, key string) *TokenStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if key == "" {
		key = "token"
	}
	return &TokenStore{client: client, key: prefix + key}
}

// Key returns the full Redis key the token lives under.
func (s *TokenStore) Key() string {
	return s.key
}

func (s *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token get: %w", err)
	}
	return v, nil
}

// SetToken stores the token without expiry; the server decides validity.
func (s *TokenStore) SetToken(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("token set: %w", err)
	}
	return nil
}

func (s *TokenStore) ClearToken(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("token clear: %w", err)
	}
	return nil
}
