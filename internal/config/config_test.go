package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "secret")
	for _, key := range []string{"APP_PORT", "APP_ENV", "LOG_LEVEL", "DB_PATH", "JWT_EXPIRATION_TIME", "CORS_ALLOWED_ORIGINS", "STATIC_DIR", "SEED_DEMO_DATA"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.True(t, cfg.App.IsDevelopment())
	assert.Equal(t, slog.LevelInfo, cfg.App.SlogLevel())
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "public", cfg.App.StaticDir)
	assert.Equal(t, "database/hr_system.db", cfg.Database.Path)
	assert.False(t, cfg.Database.SeedDemo)
	assert.Equal(t, 720*time.Hour, cfg.JWT.Expiration)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRATION_TIME", "2h")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.False(t, cfg.App.IsDevelopment())
	assert.Equal(t, slog.LevelDebug, cfg.App.SlogLevel())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.True(t, cfg.Database.SeedDemo)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET_KEY")
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("JWT_EXPIRATION_TIME", "forever")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_EXPIRATION_TIME")
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "secret")
		t.Setenv("JWT_EXPIRATION_TIME", "")
		t.Setenv("APP_PORT", "http")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_PORT")
	})
}
