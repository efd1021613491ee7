// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName = "tasktracker"

	// EnvAPIURL overrides the configured API base URL.
	EnvAPIURL = "TASKTRACKER_API_URL"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
	UI  UIConfig  `yaml:"ui"`
}

// APIConfig holds settings for the REST API connection.
type APIConfig struct {
	URL string `yaml:"url"`

	// Timeout is a Go duration string ("10s"). Empty means no timeout.
	Timeout string `yaml:"timeout,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	// File is the log destination; the terminal is owned by the UI.
	File string `yaml:"file,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	// Notifications enables desktop notifications for overdue tasks.
	Notifications bool `yaml:"notifications"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL: "http://localhost:5000",
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Notifications: true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file and applies
// environment overrides. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path and applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.URL) == "" {
		return fmt.Errorf("api.url must not be empty")
	}
	if _, err := c.RequestTimeout(); err != nil {
		return err
	}
	return nil
}

// RequestTimeout returns the parsed API timeout, or zero when unset.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.API.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api.timeout %q: %w", c.API.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("api.timeout must not be negative")
	}
	return d, nil
}
