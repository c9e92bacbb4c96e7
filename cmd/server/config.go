package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// serverConfig is the full server configuration, loadable from an optional
// clubdesk.toml and overridable via environment variables.
type serverConfig struct {
	Host     string        `toml:"host"`
	Port     int           `toml:"port"`
	LogLevel string        `toml:"log_level"`
	Storage  storageConfig `toml:"storage"`
}

type storageConfig struct {
	// Type selects the backend: memory, redis or sqlite
	Type       string `toml:"type"`
	RedisURL   string `toml:"redis_url"`
	SQLitePath string `toml:"sqlite_path"`
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Host:     "",
		Port:     8080,
		LogLevel: "info",
		Storage: storageConfig{
			Type:       "memory",
			SQLitePath: "clubdesk.db",
		},
	}
}

// loadConfig builds the configuration in three layers: defaults, then the
// TOML file (CLUBDESK_CONFIG or ./clubdesk.toml if present), then
// environment variables.
func loadConfig() (serverConfig, error) {
	cfg := defaultServerConfig()

	path := os.Getenv("CLUBDESK_CONFIG")
	if path == "" {
		if _, err := os.Stat("clubdesk.toml"); err == nil {
			path = "clubdesk.toml"
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *serverConfig) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
}

func (c serverConfig) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
