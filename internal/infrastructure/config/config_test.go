package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "retail-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 5, cfg.Stock.LowStockThreshold)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
		assert.NotZero(t, cfg.HTTP.ReadTimeout)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("RETAIL_APP_PORT", "8080")
		t.Setenv("RETAIL_DATABASE_HOST", "db.internal")
		t.Setenv("RETAIL_LOG_LEVEL", "debug")
		t.Setenv("RETAIL_STOCK_LOW_STOCK_THRESHOLD", "9")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 9, cfg.Stock.LowStockThreshold)
	})

	t.Run("production requires a password and TLS", func(t *testing.T) {
		t.Setenv("RETAIL_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("production rejects wildcard CORS origins", func(t *testing.T) {
		t.Setenv("RETAIL_APP_ENV", "production")
		t.Setenv("RETAIL_DATABASE_PASSWORD", "secret")
		t.Setenv("RETAIL_DATABASE_SSLMODE", "require")
		t.Setenv("RETAIL_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("idle connections cannot exceed open connections", func(t *testing.T) {
		t.Setenv("RETAIL_DATABASE_MAX_OPEN_CONNS", "2")
		t.Setenv("RETAIL_DATABASE_MAX_IDLE_CONNS", "10")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "retail",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// The password must survive URL escaping.
	assert.NotContains(t, dsn, "p@ss/word")
	assert.Contains(t, dsn, "p%40ss%2Fword")
}
