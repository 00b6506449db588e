package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
http:
  port: 8081
db:
  dsn: file:test.db
jwt:
  secret: s3cret
redis:
  addr: localhost:6379
seed:
  admin_password: password123
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.HTTP.Addr())
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.DB.DSN)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "pokedex-api", cfg.JWT.Issuer)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "admin", cfg.Seed.AdminUsername)
	assert.Equal(t, "password123", cfg.Seed.AdminPassword)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POKEDEX_DB_DSN", "file:env.db")
	t.Setenv("POKEDEX_JWT_SECRET", "from-env")
	t.Setenv("POKEDEX_HTTP_PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file:env.db", cfg.DB.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestLoad_RequiredKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "jwt:\n  secret: x\n"))
	assert.ErrorIs(t, err, ErrMissingDSN)

	_, err = Load(writeConfig(t, "db:\n  dsn: file:x.db\n"))
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}
