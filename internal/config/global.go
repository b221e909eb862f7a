package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// GetGlobalConfigDir returns the path to the global configuration directory.
// This is typically ~/.verdant/ and doubles as the default data directory.
func GetGlobalConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home cannot be determined
		return ".verdant"
	}
	return filepath.Join(home, ".verdant")
}

// GetGlobalConfigPath returns the path to the global configuration file.
func GetGlobalConfigPath() string {
	return filepath.Join(GetGlobalConfigDir(), "config")
}

// EnsureGlobalConfigDir ensures that the global configuration directory exists.
func EnsureGlobalConfigDir() error {
	dir := GetGlobalConfigDir()
	return os.MkdirAll(dir, 0755)
}

// SetGlobalConfig sets a configuration value in the global config file.
func SetGlobalConfig(key, value string) error {
	// Ensure directory exists
	if err := EnsureGlobalConfigDir(); err != nil {
		return fmt.Errorf("failed to create global config directory: %w", err)
	}

	configPath := GetGlobalConfigPath()

	// Load existing config
	envMap, err := godotenv.Read(configPath)
	if err != nil {
		// If file doesn't exist, create new map
		envMap = make(map[string]string)
	}

	// Update the value
	envMap[key] = value

	// Write back to file
	return godotenv.Write(envMap, configPath)
}

// GetGlobalConfig retrieves a configuration value from the global config file.
func GetGlobalConfig(key string) (string, error) {
	configPath := GetGlobalConfigPath()

	envMap, err := godotenv.Read(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to read global config: %w", err)
	}

	value, ok := envMap[key]
	if !ok {
		return "", fmt.Errorf("key '%s' not found in global configuration", key)
	}

	return value, nil
}
