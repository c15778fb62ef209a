package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("ReadsYAMLAndFillsDefaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "db.internal"
  user: "admin"
  database: "blockbusters"
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Pool.MaxOpenConns)
		assert.Equal(t, 5, cfg.Pool.MaxIdleConns)
		assert.Equal(t, 30, cfg.Pool.ConnMaxLifetimeMinutes)
		assert.Equal(t, 30, cfg.Pool.StatementTimeoutSeconds)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Empty(t, cfg.Scheduler.OverdueReport)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "db.internal"
  port: 5432
  user: "admin"
  database: "blockbusters"
`)

		t.Setenv("DB_HOST", "db.override")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_PASSWORD", "hunter2")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "db.override", cfg.Database.Host)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.Equal(t, "hunter2", cfg.Database.Password)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("MissingFileIsAnError", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("RejectsIncompleteDatabaseSection", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  host: "127.0.0.1"
  port: 8080
database:
  host: "db.internal"
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "database user is required")
	})

	t.Run("RejectsInvalidPort", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  host: "127.0.0.1"
  port: 99999
database:
  host: "db.internal"
  user: "admin"
  database: "blockbusters"
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "invalid server port")
	})
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "admin",
		Password: "pw",
		Database: "blockbusters",
		SSLMode:  "disable",
	}}

	assert.Equal(t,
		"postgres://admin:pw@localhost:5432/blockbusters?sslmode=disable",
		cfg.GetDatabaseConnectionString())
}
