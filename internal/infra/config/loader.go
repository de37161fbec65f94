// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ConfigFileName is the config file looked up under the config directory.
	ConfigFileName = "config.toml"

	// TokenEnvVar holds the GitHub API bearer token. It takes precedence
	// over the config file and is passed through unvalidated: an absent or
	// invalid token simply surfaces as an authorization failure at fetch
	// time.
	TokenEnvVar = "GITHUB_USER_ACTIVITY_CLI_TOKEN"

	appDirName = "gh-activity"
)

// Config holds the tool configuration.
type Config struct {
	Token      string `toml:"token"`
	APIBaseURL string `toml:"api_base_url"`
	LogLevel   string `toml:"log_level"`
	LogFile    string `toml:"log_file"`
}

// NewDefaultConfig returns the configuration used when no file exists.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Loader loads configuration from the TOML config file and the environment.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader resolving the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns the default config directory.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDirName)
}

// Load returns the merged configuration: defaults, overridden by the config
// file when present, overridden by the token environment variable.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if l.confDir != "" {
		file, err := l.loadFile(filepath.Join(l.confDir, ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if file != nil {
			cfg = mergeConfigs(cfg, file)
		}
	}

	if token := os.Getenv(TokenEnvVar); token != "" {
		cfg.Token = token
	}
	return cfg, nil
}

// loadFile reads and parses a single TOML config file.
func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the user config dir
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of over onto base.
func mergeConfigs(base, over *Config) *Config {
	merged := *base
	if over.Token != "" {
		merged.Token = over.Token
	}
	if over.APIBaseURL != "" {
		merged.APIBaseURL = over.APIBaseURL
	}
	if over.LogLevel != "" {
		merged.LogLevel = over.LogLevel
	}
	if over.LogFile != "" {
		merged.LogFile = over.LogFile
	}
	return &merged
}
