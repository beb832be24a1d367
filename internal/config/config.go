package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode  string
	HTTPAddr string
	TZ       string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string
	SQLitePath string
	DBLogLevel string

	DBMaxAttempts int
	DBRetryDelay  time.Duration
}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSLMODE", "")
	v.SetDefault("SQLITE_PATH", "catalog.db")
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("DB_MAX_ATTEMPTS", 10)
	v.SetDefault("DB_RETRY_DELAY", 2*time.Second)

	return v
}

// Load reads configuration from the environment. In debug mode a .env file
// found in the working directory or any parent is loaded first; variables
// already set in the environment win.
func Load() *Config {
	if os.Getenv("GIN_MODE") == "" || os.Getenv("GIN_MODE") == "debug" {
		if envPath := findEnvFile(".env"); envPath != "" {
			if err := godotenv.Load(envPath); err != nil {
				log.Printf("warning: could not load %s: %v", envPath, err)
			} else {
				log.Printf("loaded environment from %s", envPath)
			}
		}
	}

	return fromViper(newViper())
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		GinMode:       v.GetString("GIN_MODE"),
		HTTPAddr:      v.GetString("HTTP_ADDR"),
		TZ:            v.GetString("TZ"),
		DBDriver:      v.GetString("DB_DRIVER"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPass:        v.GetString("DB_PASS"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSLMODE"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		DBLogLevel:    v.GetString("DB_LOG_LEVEL"),
		DBMaxAttempts: v.GetInt("DB_MAX_ATTEMPTS"),
		DBRetryDelay:  v.GetDuration("DB_RETRY_DELAY"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBMaxAttempts < 1 {
		cfg.DBMaxAttempts = 1
	}

	return cfg
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return "file:" + c.SQLitePath + "?_foreign_keys=on"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
