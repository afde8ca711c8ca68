package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/savings-tracker/backend/internal/application/adapter"
)

const refreshTokenKeyPrefix = "session:refresh:"

// sessionStore implements the adapter.SessionStore interface backed by Redis.
// Keys expire together with the refresh token, so revoked and expired
// sessions need no separate cleanup.
type sessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *redis.Client) adapter.SessionStore {
	return &sessionStore{
		client: client,
	}
}

// SaveRefreshToken stores a refresh token for a user until expiry.
func (s *sessionStore) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refresh token already expired")
	}
	return s.client.Set(ctx, refreshTokenKeyPrefix+token, userID.String(), ttl).Err()
}

// RefreshTokenExists reports whether the refresh token is still active.
func (s *sessionStore) RefreshTokenExists(ctx context.Context, token string) (bool, error) {
	count, err := s.client.Exists(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteRefreshToken removes a refresh token. Deleting an unknown token is
// not an error.
func (s *sessionStore) DeleteRefreshToken(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshTokenKeyPrefix+token).Err()
}
