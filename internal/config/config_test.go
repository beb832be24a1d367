package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	for _, key := range []string{"HTTP_ADDR", "DB_DRIVER", "DB_HOST", "DB_SSLMODE", "DB_MAX_ATTEMPTS", "DB_RETRY_DELAY"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10, cfg.DBMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.DBRetryDelay)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/catalog.db")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("DB_MAX_ATTEMPTS", "0")
	t.Setenv("DB_RETRY_DELAY", "500ms")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, 1, cfg.DBMaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.DBRetryDelay)
	assert.Equal(t, "file:/tmp/catalog.db?_foreign_keys=on", cfg.DSN())
}

func TestDSN_Postgres(t *testing.T) {
	cfg := &Config{
		DBDriver:  DriverPostgres,
		DBHost:    "db",
		DBPort:    "5432",
		DBUser:    "catalog",
		DBPass:    "secret",
		DBName:    "catalog",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}

	assert.Equal(t,
		"host=db user=catalog password=secret dbname=catalog port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
