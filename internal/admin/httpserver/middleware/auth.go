package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
)

type authContextKey string

const identityContextKey authContextKey = "auth.identity"

// Identity carries the verified operator credential for the request.
type Identity struct {
	Account string
	Token   string
}

// Authenticator verifies that a bearer token is still accepted by the backend.
type Authenticator interface {
	Authenticate(r *http.Request, token string) error
}

// ErrUnauthorized is returned when authentication fails.
var ErrUnauthorized = errors.New("unauthorized")

// AuthError contains reason codes for failed authentication attempts.
type AuthError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Reason + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError constructs an AuthError with the provided reason.
func NewAuthError(reason string, err error) error {
	return &AuthError{Reason: reason, Err: err}
}

const (
	// ReasonMissingToken indicates an auth attempt without credentials.
	ReasonMissingToken = "missing_token"
	// ReasonTokenInvalid indicates a malformed or rejected token.
	ReasonTokenInvalid = "token_invalid"
	// ReasonTokenExpired indicates an expired token which may be recoverable.
	ReasonTokenExpired = "token_expired"
)

// DefaultAuthenticator accepts any non-empty bearer token and is intended for local development.
func DefaultAuthenticator() Authenticator {
	return &passthroughAuthenticator{}
}

// Auth gates requests on a live session credential. The token stored at
// sign-in is re-verified against the backend; failures clear the session and
// send the operator back to the login page.
func Auth(authenticator Authenticator, loginPath string) func(http.Handler) http.Handler {
	if authenticator == nil {
		authenticator = DefaultAuthenticator()
	}
	if loginPath == "" {
		loginPath = "/login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var account, token string
			if sess, ok := SessionFromContext(r.Context()); ok {
				account = sess.Account()
				token = sess.Token()
			}
			if strings.TrimSpace(token) == "" {
				log.Printf("auth failure: reason=%s error=%v", ReasonMissingToken, ErrUnauthorized)
				clearCredentials(r.Context())
				handleUnauthorized(w, r, loginPath, ReasonMissingToken)
				return
			}

			if err := authenticator.Authenticate(r, token); err != nil {
				reason := ReasonTokenInvalid
				var authErr *AuthError
				if errors.As(err, &authErr) {
					if authErr.Reason != "" {
						reason = authErr.Reason
					}
					err = authErr.Err
				}
				if err == nil {
					err = ErrUnauthorized
				}
				log.Printf("auth failure: reason=%s error=%v", reason, err)
				clearCredentials(r.Context())
				handleUnauthorized(w, r, loginPath, reason)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, &Identity{
				Account: account,
				Token:   token,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithIdentity attaches a verified credential to the context. Exposed
// for handler and template tests.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the verified operator credential if present.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*Identity)
	return identity, ok && identity != nil
}

// TokenFromContext returns the verified bearer token or "".
func TokenFromContext(ctx context.Context) string {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.Token
	}
	return ""
}

func handleUnauthorized(w http.ResponseWriter, r *http.Request, loginPath, reason string) {
	if reason == "" {
		reason = ReasonTokenInvalid
	}

	if IsHTMXRequest(r.Context()) {
		if reason == ReasonTokenExpired {
			w.Header().Set("HX-Refresh", "true")
		} else {
			w.Header().Set("HX-Redirect", loginPath)
		}
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	redirectURL := loginPath
	if reason == ReasonTokenExpired {
		if u, err := url.Parse(loginPath); err == nil {
			q := u.Query()
			q.Set("reason", "expired")
			u.RawQuery = q.Encode()
			redirectURL = u.String()
		}
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func clearCredentials(ctx context.Context) {
	if sess, ok := SessionFromContext(ctx); ok && sess != nil {
		sess.ClearCredentials()
	}
}

type passthroughAuthenticator struct{}

func (p *passthroughAuthenticator) Authenticate(_ *http.Request, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	return nil
}
