package core

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Save original env vars
	origLogLevel := os.Getenv("LOG_LEVEL")
	origDebug := os.Getenv("DEBUG")
	origProfile := os.Getenv("BT2_PROFILE")

	// Restore after test
	defer func() {
		os.Setenv("LOG_LEVEL", origLogLevel)
		os.Setenv("DEBUG", origDebug)
		os.Setenv("BT2_PROFILE", origProfile)
	}()

	tests := []struct {
		name            string
		envVars         map[string]string
		expectedLevel   string
		expectedProfile string
	}{
		{
			name:          "default values",
			envVars:       map[string]string{},
			expectedLevel: "info",
		},
		{
			name: "custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
			},
			expectedLevel: "warn",
		},
		{
			name: "debug flag overrides log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
				"DEBUG":     "1",
			},
			expectedLevel: "debug",
		},
		{
			name: "profile overlay path",
			envVars: map[string]string{
				"BT2_PROFILE": "/etc/bt2/profile.yaml",
			},
			expectedLevel:   "info",
			expectedProfile: "/etc/bt2/profile.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear env vars
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("DEBUG")
			os.Unsetenv("BT2_PROFILE")

			// Set test env vars
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expectedLevel)
			}

			if cfg.ProfilePath != tt.expectedProfile {
				t.Errorf("ProfilePath = %v, want %v", cfg.ProfilePath, tt.expectedProfile)
			}
		})
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	// Save original env var
	origValue := os.Getenv("TEST_VAR")
	defer os.Setenv("TEST_VAR", origValue)

	os.Unsetenv("TEST_VAR")
	if got := getEnvOrDefault("TEST_VAR", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault = %v, want fallback", got)
	}

	os.Setenv("TEST_VAR", "set")
	if got := getEnvOrDefault("TEST_VAR", "fallback"); got != "set" {
		t.Errorf("getEnvOrDefault = %v, want set", got)
	}
}
