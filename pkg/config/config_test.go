package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPRUTHUB_WS_URL", "ws://spruthub.local:9090/spruthub")
	t.Setenv("SPRUTHUB_EMAIL", "user@example.com")
	t.Setenv("SPRUTHUB_PASSWORD", "secret")
	t.Setenv("SPRUTHUB_SERIAL", "SH-1234")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ws://spruthub.local:9090/spruthub", cfg.Hub.WSURL)
	assert.Equal(t, "user@example.com", cfg.Hub.Email)
	assert.Equal(t, "secret", cfg.Hub.Password)
	assert.Equal(t, "SH-1234", cfg.Hub.Serial)

	// Defaults
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9084", cfg.APIAddress())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPRUTHUB_LOG_LEVEL", "debug")
	t.Setenv("SPRUTHUB_HOST", "0.0.0.0")
	t.Setenv("SPRUTHUB_PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.APIAddress())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SPRUTHUB_WS_URL", "ws://spruthub.local:9090/spruthub")
	t.Setenv("SPRUTHUB_EMAIL", "")
	t.Setenv("SPRUTHUB_PASSWORD", "")
	t.Setenv("SPRUTHUB_SERIAL", "SH-1234")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPRUTHUB_EMAIL")
	assert.Contains(t, err.Error(), "SPRUTHUB_PASSWORD")
	assert.NotContains(t, err.Error(), "SPRUTHUB_WS_URL")
}
