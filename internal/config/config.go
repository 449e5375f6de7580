package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the whole application configuration.
// Populated from environment variables, with development defaults.
type Config struct {
	App     AppConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig points the record store at its data directory.
// Both log files (journal + audit) live directly under DataDir.
type StorageConfig struct {
	DataDir string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Product Registry API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("STORAGE_DIR", "data"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable before anything is wired up.
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.Storage.DataDir == "" {
		return fmt.Errorf("STORAGE_DIR must not be empty")
	}
	return nil
}

// JournalPath returns the path of the machine-readable JSONL log.
func (c *Config) JournalPath() string {
	return filepath.Join(c.Storage.DataDir, "productos.jsonl")
}

// AuditPath returns the path of the human-readable pipe-delimited log.
func (c *Config) AuditPath() string {
	return filepath.Join(c.Storage.DataDir, "productos.txt")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
