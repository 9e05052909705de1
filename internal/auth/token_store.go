package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"medstore/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID, username string, roles []string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (username string, roles []string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps issued refresh tokens in Redis, keyed by JTI. Access
// tokens stay stateless; only refresh tokens are server-side so logout can
// revoke them.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

type refreshTokenData struct {
	Username string `json:"username"`
	Roles    string `json:"roles"`
}

// StoreRefreshToken stores a refresh token in Redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID, username string, roles []string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenData{
		Username: username,
		Roles:    strings.Join(roles, ","),
	})
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves refresh token data from Redis.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, []string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return "", nil, fmt.Errorf("refresh token not found")
	}

	var stored refreshTokenData
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", nil, fmt.Errorf("unmarshal token data: %w", err)
	}
	if stored.Username == "" {
		return "", nil, fmt.Errorf("invalid token data")
	}
	return stored.Username, strings.Split(stored.Roles, ","), nil
}

// DeleteRefreshToken removes a refresh token from Redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
