package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// APIEndpoint is the base URL of the blockchain REST API
	APIEndpoint string `yaml:"apiEndpoint"`
	// UserAgent is sent with every API request
	UserAgent string `yaml:"userAgent"`
	// DBPath is where account and reward snapshots are stored
	DBPath string `yaml:"dbPath"`
}

var (
	// Global configuration instance
	globalConfig *Config
	// Mutex to ensure thread-safe access to the global configuration
	configMutex sync.RWMutex
	// Flag to track if the configuration has been loaded
	configLoaded bool
)

// LoadConfig loads the configuration from the specified YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// InitGlobalConfig initializes the global configuration from the specified file
func InitGlobalConfig(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = config
	configLoaded = true
	return nil
}

// GetConfig returns the global configuration instance
// If the configuration hasn't been loaded yet, it attempts to load it from
// the default location (./config.yaml)
func GetConfig() (*Config, error) {
	configMutex.RLock()
	if configLoaded {
		defer configMutex.RUnlock()
		return globalConfig, nil
	}
	configMutex.RUnlock()

	configPath := "config.yaml"
	if err := InitGlobalConfig(configPath); err != nil {
		// If the default config file doesn't exist, create it
		if os.IsNotExist(err) {
			dir := filepath.Dir(configPath)
			if dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return nil, fmt.Errorf("error creating config directory: %w", err)
				}
			}

			defaultConfig := &Config{
				APIEndpoint: "",
				UserAgent:   "",
				DBPath:      "",
			}

			data, err := yaml.Marshal(defaultConfig)
			if err != nil {
				return nil, fmt.Errorf("error creating default config: %w", err)
			}

			if err := os.WriteFile(configPath, data, 0644); err != nil {
				return nil, fmt.Errorf("error writing default config: %w", err)
			}

			configMutex.Lock()
			globalConfig = defaultConfig
			configLoaded = true
			configMutex.Unlock()

			return defaultConfig, nil
		}
		return nil, err
	}

	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig, nil
}

// GetAPIEndpoint returns the configured API endpoint, which may be empty
// when the client's default should be used
func GetAPIEndpoint() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	return config.APIEndpoint, nil
}

// GetUserAgent returns the configured user agent, which may be empty
func GetUserAgent() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	return config.UserAgent, nil
}

// GetDBPath returns the configured snapshot database path
func GetDBPath() (string, error) {
	config, err := GetConfig()
	if err != nil {
		return "", err
	}

	if config.DBPath == "" {
		return "", fmt.Errorf("error: snapshot database path not set in configuration")
	}

	return config.DBPath, nil
}
