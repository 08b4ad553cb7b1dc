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

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, DriverMemory, cfg.Session.Driver)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "@hourly", cfg.Sweeper.Cron)
	assert.True(t, cfg.Store.Seed)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  dsn: from-yaml.db
session:
  driver: redis
  ttl: 1h
`)
	t.Setenv("DATABASE_DSN", "from-env.db")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "pw")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Session.RedisURL)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: "memory"},
			Session:  SessionConfig{Driver: "memory", TTL: time.Hour},
		}
	}
	require.NoError(t, base().Validate())

	c := base()
	c.Database.Driver = "mysql"
	assert.Error(t, c.Validate())

	c = base()
	c.Database.Driver = "Postgres"
	assert.Error(t, c.Validate(), "postgres without dsn")

	c = base()
	c.Session.Driver = "redis"
	assert.Error(t, c.Validate())

	c = base()
	c.Admin.Username = "admin"
	assert.Error(t, c.Validate())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGORMLogLevel(t *testing.T) {
	d := &DatabaseConfig{}
	for _, lvl := range []string{"debug", "info", "error", ""} {
		assert.NotNil(t, d.GetGORMConfig(lvl).Logger, lvl)
	}
}
