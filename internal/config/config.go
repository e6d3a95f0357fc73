// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvStore      = "RESUME_STORE"
	EnvLogMode    = "RESUME_LOG_MODE"
	EnvChromePath = "CHROME_PATH"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Store      string `json:"store,omitempty" yaml:"store,omitempty" validate:"omitempty,store_url"`                            // Store URL (file, sqlite, postgres, redis, memory)
	Template   string `json:"template,omitempty" yaml:"template,omitempty" validate:"omitempty,oneof=classic modern minimal"`    // Template used when none is persisted
	LogMode    string `json:"log_mode,omitempty" yaml:"log_mode,omitempty" validate:"omitempty,oneof=production development"` // zap encoder mode
	Verbose    bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                                                       // Debug logging
	ChromePath string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`                                               // Chrome binary for print

	// Server
	Port              int     `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RequestsPerSecond float64 `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty" validate:"omitempty,gt=0"`
	Burst             int     `json:"burst,omitempty" yaml:"burst,omitempty" validate:"omitempty,min=1"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogMode:           "production",
		Port:              8080,
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

var storeSchemes = []string{"file://", "sqlite://", "postgres://", "postgresql://", "redis://", "rediss://", "memory://"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("store_url", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strings.Contains(s, "://") {
			return true // bare directory path
		}
		for _, scheme := range storeSchemes {
			if strings.HasPrefix(s, scheme) {
				return true
			}
		}
		return false
	})
	return v
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvStore); v != "" {
		c.Store = v
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		c.LogMode = v
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		c.ChromePath = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: '%s' failed %q validation (value %v)", jsonName(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

func jsonName(field string) string {
	switch field {
	case "LogMode":
		return "log_mode"
	case "ChromePath":
		return "chrome_path"
	case "RequestsPerSecond":
		return "requests_per_second"
	default:
		return strings.ToLower(field)
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.LogMode == "" {
		result.LogMode = defaults.LogMode
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RequestsPerSecond == 0 {
		result.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if result.Burst == 0 {
		result.Burst = defaults.Burst
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
