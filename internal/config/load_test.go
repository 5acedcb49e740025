package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskwell/taskboard-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv forbids t.Parallel.
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, config.DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, config.DefaultAdminUsername, cfg.Auth.AdminUsername)
	assert.Equal(t, config.DefaultAdminPassword, cfg.Auth.AdminPassword)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenLifetime)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://db.internal:5432/taskboard")
	t.Setenv("TASKBOARD_SERVER_PORT", "8080")
	t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKBOARD_AUTH_JWT_SECRET", "a-real-secret")
	t.Setenv("TASKBOARD_AUTH_ADMIN_USERNAME", "operator")
	t.Setenv("TASKBOARD_AUTH_ADMIN_PASSWORD", "s3cure")
	t.Setenv("TASKBOARD_AUTH_TOKEN_LIFETIME", "1h")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://db.internal:5432/taskboard", cfg.Database.URL)
	assert.Equal(t, "a-real-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "operator", cfg.Auth.AdminUsername)
	assert.Equal(t, "s3cure", cfg.Auth.AdminPassword)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
}

func TestLoad_ValidationFailures(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("TASKBOARD_DATABASE_URL", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard")
		t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "verbose")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("out of range port", func(t *testing.T) {
		t.Setenv("TASKBOARD_DATABASE_URL", "postgres://localhost:5432/taskboard")
		t.Setenv("TASKBOARD_SERVER_PORT", "70000")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
