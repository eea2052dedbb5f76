// Package config reads settings from the environment, with an optional
// .env file for local overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"goalquest/internal/storage"
)

type Config struct {
	DBPath       string
	GeminiAPIKey string
	Model        string
	LogLevel     string
	Timezone     string
}

// Load reads .env when present, then the environment. Missing values fall
// back to defaults; only a broken .env file is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	dbPath := os.Getenv("GQ_DB_PATH")
	if dbPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	cfg := &Config{
		DBPath:       dbPath,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Model:        getenv("GQ_MODEL", "gemini-2.0-flash"),
		LogLevel:     getenv("GQ_LOG_LEVEL", "warn"),
		Timezone:     getenv("GQ_TIMEZONE", "America/Chicago"),
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to the system
// local zone when the name does not load.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
