package config

import (
	"os"
	"strconv"

	"neurometrics/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
	Sweep    SweepConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds optional comparison-history storage settings.
// History is disabled when URL is empty.
type DatabaseConfig struct {
	URL string
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	MaxUploadSize int64
}

// SweepConfig holds pairwise sweep settings
type SweepConfig struct {
	Concurrency int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Data: DataConfig{
			MaxUploadSize: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 16)) << 20,
		},
		Sweep: SweepConfig{
			Concurrency: getEnvIntOrDefault("SWEEP_CONCURRENCY", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Sweep.Concurrency < 1 {
		return errors.ConfigInvalid("sweep concurrency must be at least 1")
	}
	if config.Data.MaxUploadSize < 1 {
		return errors.ConfigInvalid("max upload size must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
