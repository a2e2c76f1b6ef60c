package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gift-exchange-service/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_PORT", "STORE_BACKEND", "DATA_FILE",
		"ADMIN_SECRET", "ADMIN_SECRET_HASH", "REDIS_DB", "REDIS_KEY",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "INDEX_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "gift-exchange-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8000", cfg.App.Addr())
	require.Equal(t, "file", cfg.Store.Backend)
	require.Equal(t, "data.json", cfg.Store.DataFile)
	require.Equal(t, "santaadmin", cfg.Auth.AdminSecret)
	require.Empty(t, cfg.Auth.AdminSecretHash)
	require.Equal(t, "gift-exchange:snapshot", cfg.Redis.Key)
	require.Equal(t, "web/index.html", cfg.Web.IndexFile)
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("DATA_FILE", "/var/lib/exchange")
	t.Setenv("ADMIN_SECRET", "hunter2")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9000", cfg.App.Port)
	require.Equal(t, "redis", cfg.Store.Backend)
	require.Equal(t, "/var/lib/exchange", cfg.Store.DataFile)
	require.Equal(t, "hunter2", cfg.Auth.AdminSecret)
	require.Equal(t, time.Duration(0), cfg.App.RequestTimeout())
}

func TestLoadRejectsInvalidRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
}
