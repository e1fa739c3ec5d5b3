package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/fyyur")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Database.MaxOpen)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "*", cfg.HTTP.CORSOrigin)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Empty(t, cfg.HTTP.EditorJWTSecret)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "file:dev.db")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PORT", "5000")
	t.Setenv("EDITOR_JWT_SECRET", "s3cret")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, "s3cret", cfg.HTTP.EditorJWTSecret)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing DB_URL", func(t *testing.T) {
		t.Setenv("DB_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_URL", "whatever")
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})
}
