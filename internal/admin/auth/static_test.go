package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hexfield/catalog-admin/internal/admin/auth"
)

func newStatic(t *testing.T) (*auth.StaticService, *time.Time) {
	t.Helper()

	current := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc := auth.NewStaticService([]byte("0123456789abcdef0123456789abcdef"), map[string]string{
		"admin@example.com": "password123",
	}, time.Hour)
	svc.SetClock(func() time.Time { return current })
	return svc, &current
}

func TestStaticServiceSignInAndCheck(t *testing.T) {
	t.Parallel()

	svc, now := newStatic(t)

	creds, err := svc.SignIn(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, creds.Token)
	require.True(t, creds.Expiry.Equal(now.Add(time.Hour)))

	require.NoError(t, svc.Check(context.Background(), creds.Token))
}

func TestStaticServiceRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newStatic(t)

	_, err := svc.SignIn(context.Background(), "admin@example.com", "nope")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "ghost@example.com", "password123")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestStaticServiceRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	svc, now := newStatic(t)

	creds, err := svc.SignIn(context.Background(), "admin@example.com", "password123")
	require.NoError(t, err)

	*now = now.Add(2 * time.Hour)
	require.ErrorIs(t, svc.Check(context.Background(), creds.Token), auth.ErrTokenRejected)
}

func TestStaticServiceRejectsForgedToken(t *testing.T) {
	t.Parallel()

	svc, _ := newStatic(t)
	require.ErrorIs(t, svc.Check(context.Background(), "not-a-jwt"), auth.ErrTokenRejected)
}
