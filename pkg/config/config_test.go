package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return configPath
}

func TestLoadConfig(t *testing.T) {
	configPath := writeTestConfig(t, `
apiEndpoint: https://api.example.com/v1
userAgent: test-agent
dbPath: /tmp/snapshots.db
`)

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.APIEndpoint != "https://api.example.com/v1" {
		t.Errorf("Expected endpoint 'https://api.example.com/v1', got '%s'", config.APIEndpoint)
	}
	if config.UserAgent != "test-agent" {
		t.Errorf("Expected user agent 'test-agent', got '%s'", config.UserAgent)
	}
	if config.DBPath != "/tmp/snapshots.db" {
		t.Errorf("Expected db path '/tmp/snapshots.db', got '%s'", config.DBPath)
	}
}

func TestLoadConfigError(t *testing.T) {
	// Non-existent config file
	_, err := LoadConfig("non-existent-file.yaml")
	if err == nil {
		t.Errorf("Expected error when loading non-existent file, got nil")
	}

	// Invalid YAML
	invalidPath := writeTestConfig(t, `invalid: yaml: content`)
	_, err = LoadConfig(invalidPath)
	if err == nil {
		t.Errorf("Expected error when loading invalid YAML, got nil")
	}
}

func TestInitGlobalConfig(t *testing.T) {
	// Reset global config for testing
	configMutex.Lock()
	globalConfig = nil
	configLoaded = false
	configMutex.Unlock()

	configPath := writeTestConfig(t, `apiEndpoint: https://api.example.com/v1`)

	if err := InitGlobalConfig(configPath); err != nil {
		t.Fatalf("Failed to initialize global config: %v", err)
	}

	configMutex.RLock()
	defer configMutex.RUnlock()
	if !configLoaded {
		t.Errorf("Expected configLoaded to be true, got false")
	}
	if globalConfig == nil {
		t.Fatalf("Expected globalConfig to be non-nil, got nil")
	}
	if globalConfig.APIEndpoint != "https://api.example.com/v1" {
		t.Errorf("Expected endpoint 'https://api.example.com/v1', got '%s'", globalConfig.APIEndpoint)
	}
}

func TestGetDBPath(t *testing.T) {
	configMutex.Lock()
	globalConfig = &Config{DBPath: "/tmp/test.db"}
	configLoaded = true
	configMutex.Unlock()

	dbPath, err := GetDBPath()
	if err != nil {
		t.Fatalf("Failed to get db path: %v", err)
	}
	if dbPath != "/tmp/test.db" {
		t.Errorf("Expected db path '/tmp/test.db', got '%s'", dbPath)
	}

	// Empty path should return an error
	configMutex.Lock()
	globalConfig = &Config{DBPath: ""}
	configMutex.Unlock()

	if _, err := GetDBPath(); err == nil {
		t.Errorf("Expected error when db path is empty, got nil")
	}
}

func TestGetAPIEndpointAllowsEmpty(t *testing.T) {
	configMutex.Lock()
	globalConfig = &Config{}
	configLoaded = true
	configMutex.Unlock()

	endpoint, err := GetAPIEndpoint()
	if err != nil {
		t.Fatalf("Failed to get API endpoint: %v", err)
	}
	if endpoint != "" {
		t.Errorf("Expected empty endpoint, got '%s'", endpoint)
	}
}
