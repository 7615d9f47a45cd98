package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, populated from the environment.
type Config struct {
	ListenAddr  string     `env:"LISTEN_ADDR" envDefault:":8080"`
	StorageType string     `env:"STORAGE_TYPE" envDefault:"jsonfile"`
	DataDir     string     `env:"DATA_DIR" envDefault:"data"`
	RedisURL    string     `env:"REDIS_URL"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
