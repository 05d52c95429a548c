package config

import (
	"os"
	"strings"
)

// Config keeps runtime settings for the service.
type Config struct {
	Addr        string
	DatabaseURL string
	DBDriver    string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Addr:        strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBDriver:    strings.TrimSpace(os.Getenv("DB_DRIVER")),
	}

	if cfg.Addr == "" {
		cfg.Addr = "8000"
	}
	if !strings.HasPrefix(cfg.Addr, ":") {
		cfg.Addr = ":" + cfg.Addr
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tasktrackr.db"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}

	return cfg
}
