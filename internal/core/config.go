package core

import (
	"os"
)

// Config holds the CLI configuration.
type Config struct {
	LogLevel    string // debug, info, warn, error
	ProfilePath string // Optional default-profile overlay (YAML)
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	cfg := &Config{
		LogLevel:    logLevel,
		ProfilePath: os.Getenv("BT2_PROFILE"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
