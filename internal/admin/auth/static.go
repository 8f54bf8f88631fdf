package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 2 * time.Hour

// StaticService is a self-contained Service for local development and tests.
// It issues HS256-signed tokens with an expiry instead of calling a backend,
// so the rest of the stack exercises the same token lifecycle.
type StaticService struct {
	secret   []byte
	accounts map[string]string
	ttl      time.Duration
	now      func() time.Time
}

// NewStaticService builds a StaticService for the given account set
// (username -> password). A zero ttl falls back to two hours.
func NewStaticService(secret []byte, accounts map[string]string, ttl time.Duration) *StaticService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	copied := make(map[string]string, len(accounts))
	for user, pass := range accounts {
		copied[user] = pass
	}
	return &StaticService{
		secret:   secret,
		accounts: copied,
		ttl:      ttl,
		now:      time.Now,
	}
}

// SignIn validates the account pair and issues a signed token.
func (s *StaticService) SignIn(_ context.Context, username, password string) (Credentials, error) {
	stored, ok := s.accounts[username]
	if !ok || stored != password {
		return Credentials{}, ErrInvalidCredentials
	}

	now := s.now()
	expiry := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Credentials{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return Credentials{Token: signed, Expiry: expiry}, nil
}

// Check verifies the token signature and expiry.
func (s *StaticService) Check(_ context.Context, token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenRejected, err)
	}
	if !parsed.Valid {
		return ErrTokenRejected
	}
	return nil
}

// SetClock overrides the time source; used by tests to exercise expiry.
func (s *StaticService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}
