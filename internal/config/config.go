// Package config manages application configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/verdantapp/verdant/internal/diagnose"
)

// Configuration keys.
const (
	KeyAPIKey  = "GEMINI_API_KEY"
	KeyModel   = "GEMINI_MODEL"
	KeyDataDir = "VERDANT_DATA_DIR"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
	DataDir      string
}

// Load reads configuration from a .env file in the specified directory.
// If the .env file doesn't exist, it falls back to global config
// (~/.verdant/config), then to environment variables and defaults.
func Load(dir string) (*Config, error) {
	envPath := GetConfigPath(dir)

	// Read local .env file if it exists
	localEnvMap, err := godotenv.Read(envPath)
	if err != nil {
		localEnvMap = make(map[string]string)
	}

	// Read global config file
	globalEnvMap, err := godotenv.Read(GetGlobalConfigPath())
	if err != nil {
		globalEnvMap = make(map[string]string)
	}

	// Helper to get value with precedence: local > global > env > default
	getValueWithFallback := func(key, defaultValue string) string {
		if value, ok := localEnvMap[key]; ok && value != "" {
			return value
		}
		if value, ok := globalEnvMap[key]; ok && value != "" {
			return value
		}
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		GeminiAPIKey: getValueWithFallback(KeyAPIKey, ""),
		GeminiModel:  getValueWithFallback(KeyModel, diagnose.DefaultModel),
		DataDir:      getValueWithFallback(KeyDataDir, GetGlobalConfigDir()),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set. The API key
// is deliberately not checked here: most commands never talk to the model and
// the diagnosis path requires the credential on its own.
func (c *Config) Validate() error {
	if c.GeminiModel == "" {
		return fmt.Errorf("missing required configuration field: %s", KeyModel)
	}
	if c.DataDir == "" {
		return fmt.Errorf("missing required configuration field: %s", KeyDataDir)
	}
	return nil
}

// RequireAPIKey returns a configuration error when no credential is set.
func (c *Config) RequireAPIKey() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: run 'verdant config set %s <key> --global'", diagnose.ErrMissingAPIKey, KeyAPIKey)
	}
	return nil
}

// GetConfigPath returns the full path to the .env file in the given directory.
func GetConfigPath(dir string) string {
	return filepath.Join(dir, ".env")
}

// Set updates or creates a configuration value in the .env file.
func Set(dir, key, value string) error {
	envPath := GetConfigPath(dir)

	// Load existing config
	envMap, err := godotenv.Read(envPath)
	if err != nil {
		// If file doesn't exist, create new map
		envMap = make(map[string]string)
	}

	// Update the value
	envMap[key] = value

	// Write back to file
	return godotenv.Write(envMap, envPath)
}

// Get retrieves a configuration value from the .env file.
func Get(dir, key string) (string, error) {
	envPath := GetConfigPath(dir)

	envMap, err := godotenv.Read(envPath)
	if err != nil {
		return "", fmt.Errorf("failed to read config: %w", err)
	}

	value, ok := envMap[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}

	return value, nil
}

// List returns every key/value pair of the local .env file, sorted by key.
func List(dir string) ([][2]string, error) {
	envMap, err := godotenv.Read(GetConfigPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, envMap[k]})
	}
	return out, nil
}
