// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair and
	// registers the refresh token in the session store.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token against the session
	// store and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeRefreshToken removes a refresh token from the session store.
	RevokeRefreshToken(ctx context.Context, token string) error
}

// SessionStore tracks active refresh tokens. It replaces the notion of a
// single mutable "current user" pointer: a session exists for every live
// refresh token, keyed by the token itself.
type SessionStore interface {
	// SaveRefreshToken stores a refresh token for a user until expiry.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// RefreshTokenExists reports whether the refresh token is still active.
	RefreshTokenExists(ctx context.Context, token string) (bool, error)

	// DeleteRefreshToken removes a refresh token. Deleting an unknown
	// token is not an error.
	DeleteRefreshToken(ctx context.Context, token string) error
}
