package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKHUB_DB_DSN", "postgres://localhost:5432/taskhub")
	t.Setenv("TASKHUB_TOKEN_SECRET", "test-secret")
}

func TestLoadServerConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKHUB_HTTP_PORT", "9090")
	t.Setenv("TASKHUB_DEFAULT_PAGE_SIZE", "20")
	t.Setenv("TASKHUB_TOKEN_TTL", "30m")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/taskhub", cfg.Database.DSN)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 20, cfg.Search.DefaultPageSize)
	assert.Equal(t, 30*time.Minute, cfg.Token.TTL)
	assert.Equal(t, "taskhub", cfg.Token.Issuer)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfigRequiresDSN(t *testing.T) {
	t.Setenv("TASKHUB_TOKEN_SECRET", "test-secret")

	_, err := LoadServerConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDSNRequired)
}

func TestLoadServerConfigRequiresTokenSecret(t *testing.T) {
	t.Setenv("TASKHUB_DB_DSN", "postgres://localhost:5432/taskhub")

	_, err := LoadServerConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenSecretRequired)
}

func TestSearchConfigValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKHUB_DEFAULT_PAGE_SIZE", "100")
	t.Setenv("TASKHUB_MAX_PAGE_SIZE", "50")

	_, err := LoadServerConfig()
	assert.Error(t, err)
}
