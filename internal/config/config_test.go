package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, 15, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "users_service", cfg.Mongo.Database)
	assert.Equal(t, "users", cfg.Mongo.Collection)
	assert.Equal(t, 10, cfg.Mongo.ConnectTimeoutSeconds)
	assert.Equal(t, "users.db", cfg.SQLite.Path)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.BurstCapacity)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "users-service", cfg.Logger.ServiceName)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_ProductionLoggerDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.True(t, cfg.Logger.EnableSampling)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/people.db")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_REQUESTS_PER_SECOND", "2.5")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/people.db", cfg.SQLite.Path)
	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "STORE_DRIVER=postgres\nDB_HOST=db.internal\nDB_NAME=people\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "people", cfg.DB.Name)
	assert.Equal(t, "postgres", cfg.DB.User)
}

func TestLoadConfig_DecodesEveryTaggedSection(t *testing.T) {
	dir := t.TempDir()
	content := "SHUTDOWN_TIMEOUT_SECONDS=30\nREDIS_POOL_SIZE=4\nDB_MAX_IDLE_CONNS=7\nLOG_SLOW_QUERY_SECONDS=1.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	t.Setenv("MONGO_COLLECTION", "people")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_BURST_CAPACITY", "5")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, 4, cfg.Redis.PoolSize)
	assert.Equal(t, 7, cfg.DB.MaxIdleConns)
	assert.Equal(t, 1.5, cfg.Logger.SlowQuerySeconds)
	assert.Equal(t, "people", cfg.Mongo.Collection)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.BurstCapacity)
}

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "cassandra" }},
		{"non numeric port", func(c *Config) { c.App.HTTPPort = "http" }},
		{"zero shutdown timeout", func(c *Config) { c.App.ShutdownTimeoutSeconds = 0 }},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Logger.Level = "verbose" }},
		{"missing mongo collection", func(c *Config) { c.Mongo.Collection = "" }},
		{"missing postgres host", func(c *Config) {
			c.Store.Driver = DriverPostgres
			c.DB.Host = ""
		}},
		{"missing sqlite path", func(c *Config) {
			c.Store.Driver = DriverSQLite
			c.SQLite.Path = ""
		}},
		{"rate limit without burst", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.BurstCapacity = 0
		}},
		{"rate limit without redis", func(c *Config) {
			c.RateLimit.Enabled = true
			c.Redis.Host = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Name:     "users_service",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=users_service port=5432 sslmode=disable",
		db.DSN())
}
