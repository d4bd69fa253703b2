package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8585"`
	DBPath        string `env:"DB_PATH" envDefault:"./sodashop.db"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
	TemplatesDir  string `env:"TEMPLATES_DIR" envDefault:"templates"`
	StaticDir     string `env:"STATIC_DIR" envDefault:"./static"`
	CookieDomain  string `env:"COOKIE_DOMAIN"`
	CookieSecure  bool   `env:"COOKIE_SECURE" envDefault:"false"`

	CSRFKeyB64    string `env:"CSRF_KEY"`
	SessionKeyB64 string `env:"SESSION_KEY"`

	CSRFKey    []byte `env:"-"`
	SessionKey []byte `env:"-"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CSRFKey = decodeKey("CSRF_KEY", cfg.CSRFKeyB64)
	cfg.SessionKey = decodeKey("SESSION_KEY", cfg.SessionKeyB64)
	return cfg, nil
}

// decodeKey accepts a base64 key of at least 32 bytes, otherwise generates
// a random one. A generated key changes on every restart, which invalidates
// sessions; fine for development, set real keys in production.
func decodeKey(name, value string) []byte {
	if value == "" {
		slog.Warn("Key not set, generating a random one for development", "env", name)
		return randomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil || len(decoded) < 32 {
		slog.Warn("Key invalid or shorter than 32 bytes, generating a random one", "env", name)
		return randomBytes(32)
	}
	return decoded
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform is broken; there is no
		// meaningful fallback for key material.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return b
}
