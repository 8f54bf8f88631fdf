package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hexfield/catalog-admin/internal/admin/auth"
)

// CheckAuthenticator re-validates the stored bearer token against the backend
// token-check endpoint on every gated request.
type CheckAuthenticator struct {
	service auth.Service
}

// NewCheckAuthenticator constructs an Authenticator backed by the auth service.
func NewCheckAuthenticator(service auth.Service) *CheckAuthenticator {
	if service == nil {
		panic("auth service is required")
	}
	return &CheckAuthenticator{service: service}
}

// Authenticate asks the backend whether the token is still accepted.
func (c *CheckAuthenticator) Authenticate(r *http.Request, token string) error {
	if strings.TrimSpace(token) == "" {
		return NewAuthError(ReasonMissingToken, ErrUnauthorized)
	}

	if err := c.service.Check(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrTokenRejected) {
			return NewAuthError(ReasonTokenInvalid, err)
		}
		// Backend unreachable or misbehaving counts as an expired
		// credential; the login page explains the forced sign-out.
		return NewAuthError(ReasonTokenExpired, err)
	}
	return nil
}
