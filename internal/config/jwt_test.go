package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "config-test-secret-0123456789"

func TestLoadJWTConfig_Defaults(t *testing.T) {
	t.Setenv(EnvJWTSecret, testJWTSecret)
	t.Setenv(EnvJWTTTL, "")

	cfg, err := LoadJWTConfig(true)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, testJWTSecret, cfg.Secret)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
}

func TestLoadJWTConfig_TTL(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{raw: "12", want: 12 * time.Hour},
		{raw: "168", want: 7 * 24 * time.Hour},
		{raw: "90m", want: 90 * time.Minute},
		{raw: " 2h30m ", want: 150 * time.Minute},
		{raw: "0", wantErr: true},
		{raw: "30s", wantErr: true},
		{raw: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv(EnvJWTSecret, testJWTSecret)
			t.Setenv(EnvJWTTTL, tt.raw)

			cfg, err := LoadJWTConfig(true)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TTL)
		})
	}
}

func TestLoadJWTConfig_Secret(t *testing.T) {
	t.Setenv(EnvJWTTTL, "")

	t.Setenv(EnvJWTSecret, "")
	cfg, err := LoadJWTConfig(false)
	require.NoError(t, err)
	assert.Nil(t, cfg, "optional auth stays off without a secret")

	_, err = LoadJWTConfig(true)
	assert.ErrorContains(t, err, EnvJWTSecret)

	t.Setenv(EnvJWTSecret, "short")
	_, err = LoadJWTConfig(false)
	assert.ErrorContains(t, err, "at least 16 bytes")

	t.Setenv(EnvJWTSecret, "   ")
	cfg, err = LoadJWTConfig(false)
	require.NoError(t, err)
	assert.Nil(t, cfg)
}
