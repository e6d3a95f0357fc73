package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables for API token signing.
const (
	EnvJWTSecret = "RESUME_JWT_SECRET"
	EnvJWTTTL    = "RESUME_JWT_TTL"
)

const (
	defaultTokenTTL = 24 * time.Hour
	minSecretLen    = 16
)

// JWTConfig is the signing key and lifetime of editor API tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// LoadJWTConfig reads the signing settings from the environment. With no
// secret set it returns (nil, nil) unless required is true.
//
// RESUME_JWT_TTL takes a Go duration ("90m", "12h") or a bare number of hours.
func LoadJWTConfig(required bool) (*JWTConfig, error) {
	secret := strings.TrimSpace(os.Getenv(EnvJWTSecret))
	if secret == "" {
		if required {
			return nil, fmt.Errorf("%s is required but not set", EnvJWTSecret)
		}
		return nil, nil
	}

	ttl, err := parseTTL(os.Getenv(EnvJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvJWTTTL, err)
	}

	cfg := &JWTConfig{Secret: secret, TTL: ttl}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check rejects short secrets and lifetimes under a minute.
func (c *JWTConfig) Check() error {
	if len(c.Secret) < minSecretLen {
		return fmt.Errorf("%s must be at least %d bytes, got %d", EnvJWTSecret, minSecretLen, len(c.Secret))
	}
	if c.TTL < time.Minute {
		return fmt.Errorf("%s must be at least 1m, got %s", EnvJWTTTL, c.TTL)
	}
	return nil
}

func parseTTL(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTokenTTL, nil
	}
	if hours, err := strconv.Atoi(raw); err == nil {
		return time.Duration(hours) * time.Hour, nil
	}
	return time.ParseDuration(raw)
}
