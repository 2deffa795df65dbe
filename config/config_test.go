package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENV", "DATABASE_DRIVER", "REDIS_ENABLED", "JWT_EXPIRY", "LOGIN_RATE_LIMIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 5, cfg.RateLimit.LoginAttempts)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file:fluxo.db")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("LOGIN_RATE_WINDOW", "2m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Server.IsProduction())
	assert.False(t, cfg.Server.IsTest())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:fluxo.db", cfg.Database.URL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 4, cfg.JWT.BcryptCost)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.LoginWindow)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("REDIS_ENABLED", "maybe")
	t.Setenv("JWT_EXPIRY", "forever")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
}

func TestServerEnvironment(t *testing.T) {
	assert.True(t, ServerConfig{Environment: "test"}.IsTest())
	assert.True(t, ServerConfig{Environment: "e2e"}.IsTest())
	assert.False(t, ServerConfig{Environment: "development"}.IsTest())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogConfig{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "verbose"}.SlogLevel())
}
