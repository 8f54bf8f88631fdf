package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// MinSessionKeyLength is the minimum length for the session hash key.
// securecookie wants 32 bytes for HMAC-SHA256.
const MinSessionKeyLength = 32

// Config holds the admin server configuration loaded from environment
// variables.
type Config struct {
	Address     string `env:"ADMIN_HTTP_ADDR" envDefault:":8080"`
	BasePath    string `env:"ADMIN_BASE_PATH" envDefault:"/admin"`
	Environment string `env:"ADMIN_ENV" envDefault:"development"`

	// Remote catalog API. When APIBase is empty the server runs against
	// in-memory services, which is only useful for local development.
	APIBase string `env:"ADMIN_API_BASE"`
	APIPath string `env:"ADMIN_API_PATH" envDefault:"v1"`

	// Credentials accepted by the in-memory auth service when no remote
	// API is configured.
	DevAccount  string `env:"ADMIN_DEV_ACCOUNT" envDefault:"admin@example.com"`
	DevPassword string `env:"ADMIN_DEV_PASSWORD" envDefault:"admin"`

	SessionHashKey  string        `env:"ADMIN_SESSION_HASH_KEY,required"`
	SessionBlockKey string        `env:"ADMIN_SESSION_BLOCK_KEY"`
	SessionLifetime time.Duration `env:"ADMIN_SESSION_LIFETIME" envDefault:"12h"`
	CookieSecure    bool          `env:"ADMIN_COOKIE_SECURE" envDefault:"false"`
}

// UseRemoteAPI reports whether the server talks to a real catalog backend.
func (c Config) UseRemoteAPI() bool {
	return c.APIBase != ""
}

// IsDevelopment returns true when running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionHashKey) < MinSessionKeyLength {
		return nil, fmt.Errorf("ADMIN_SESSION_HASH_KEY must be at least %d bytes long, got %d; "+
			"generate one with: openssl rand -base64 32",
			MinSessionKeyLength, len(cfg.SessionHashKey))
	}

	// securecookie only accepts AES key sizes for the block key.
	switch len(cfg.SessionBlockKey) {
	case 0, 16, 24, 32:
	default:
		return nil, fmt.Errorf("ADMIN_SESSION_BLOCK_KEY must be 16, 24 or 32 bytes long, got %d",
			len(cfg.SessionBlockKey))
	}

	return cfg, nil
}
