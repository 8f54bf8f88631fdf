package auth

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidCredentials is returned when the backend rejects a sign-in.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrTokenRejected is returned when a stored token fails validation.
	ErrTokenRejected = errors.New("auth: token rejected")
)

// Credentials carries the bearer token issued by the backend and its expiry.
type Credentials struct {
	Token  string
	Expiry time.Time
}

// Service exposes the backend's sign-in and token validation endpoints.
type Service interface {
	// SignIn exchanges a username/password pair for a bearer token.
	SignIn(ctx context.Context, username, password string) (Credentials, error)

	// Check validates a previously issued token with the backend.
	Check(ctx context.Context, token string) error
}
