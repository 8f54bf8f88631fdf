package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hexfield/catalog-admin/internal/admin/auth"
	"github.com/hexfield/catalog-admin/internal/admin/catalog"
	"github.com/hexfield/catalog-admin/internal/admin/httpserver"
	"github.com/hexfield/catalog-admin/internal/admin/httpserver/middleware"
)

// DefaultAccount is the operator credential pre-seeded into test servers.
const (
	DefaultAccount  = "operator@example.com"
	DefaultPassword = "pa55word"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthenticator overrides the authenticator used by the admin server.
func WithAuthenticator(authn middleware.Authenticator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Authenticator = authn
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithCatalogService wires a custom catalog service implementation.
func WithCatalogService(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.CatalogService = service
	}
}

// WithAuthService wires a custom auth service implementation.
func WithAuthService(service auth.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.AuthService = service
	}
}

// WithEnvironment sets the environment label rendered in the chrome.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// NewServer constructs an httptest server running the admin HTTP stack with
// sensible defaults: a static auth service seeded with DefaultAccount and an
// empty in-memory catalog.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:         ":0",
		BasePath:        "/admin",
		Environment:     "Development",
		SessionHashKey:  []byte("0123456789abcdef0123456789abcdef"),
		SessionBlockKey: []byte("fedcba9876543210fedcba9876543210"),
		SessionLifetime: time.Hour,
		AuthService: auth.NewStaticService(
			[]byte("test-signing-secret"),
			map[string]string{DefaultAccount: DefaultPassword},
			time.Hour,
		),
		CatalogService: catalog.NewStaticService(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("httpserver.New: %v", err)
	}
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
