package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/config"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_TRUSTED_HEADERS", "CF-Connecting-IP,X-Real-IP")

	var cfg Config
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles()))

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, []string{"CF-Connecting-IP", "X-Real-IP"}, cfg.TrustedHeaders)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "kbaccess:", cfg.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	var cfg Config
	assert.Error(t, config.Load(&cfg, config.WithEnvFiles()))
}

func TestTokenCommandRejectsUnknownRole(t *testing.T) {
	cmd := tokenCmd(func() (Config, error) {
		t.Fatal("config must not be loaded for an unknown role")
		return Config{}, nil
	})
	cmd.SetArgs([]string{"--user", "u1", "--role", "superuser"})
	assert.ErrorContains(t, cmd.Execute(), "unknown role")
}
