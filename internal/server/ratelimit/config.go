package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment overrides for the limiter.
const (
	EnvEnabled   = "RESUME_RATE_LIMIT_ENABLED"
	EnvAllowlist = "RESUME_RATE_LIMIT_ALLOWLIST"
	EnvBlocklist = "RESUME_RATE_LIMIT_BLOCKLIST"
	EnvCleanup   = "RESUME_RATE_LIMIT_CLEANUP_INTERVAL"
)

// Rule overrides the default rate for one route.
type Rule struct {
	Method string
	Path   string // exact, or a prefix when it ends with "/"
	// RequestsPerSecond of zero or less leaves the route unlimited.
	RequestsPerSecond float64
	Burst             int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
	CleanupInterval   time.Duration
	IdleTTL           time.Duration
	Allowlist         map[string]bool
	Blocklist         map[string]bool
	Rules             []Rule
}

// LoadConfig builds a configuration around the given default rate, applying
// environment overrides for enablement, client lists and cleanup cadence.
func LoadConfig(requestsPerSecond float64, burst int) *Config {
	return &Config{
		Enabled:           getEnvBool(EnvEnabled, true),
		RequestsPerSecond: requestsPerSecond,
		Burst:             burst,
		CleanupInterval:   getEnvDuration(EnvCleanup, 5*time.Minute),
		IdleTTL:           time.Hour,
		Allowlist:         parseIPList(os.Getenv(EnvAllowlist)),
		Blocklist:         parseIPList(os.Getenv(EnvBlocklist)),
		Rules:             DefaultRules(),
	}
}

// DefaultRules throttles the expensive routes harder than plain edits.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Path: "/health"},
		{Method: "GET", Path: "/api/print", RequestsPerSecond: 0.2, Burst: 2},
		{Method: "POST", Path: "/api/import", RequestsPerSecond: 1, Burst: 5},
	}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIPList parses a comma separated list of client addresses.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
