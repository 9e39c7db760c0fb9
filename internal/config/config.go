// Package config handles loading and saving the otpdeck configuration file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "OTPDECK_CONFIG"

// Config represents the otpdeck configuration file
type Config struct {
	// Appearance preferences shown on the settings screen
	Appearance AppearanceConfig `yaml:"appearance"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// AppearanceConfig holds the persisted appearance preferences.
// Enumerated values are stored by their canonical upper-case names.
type AppearanceConfig struct {
	Theme            string `yaml:"theme"`
	ListStyle        string `yaml:"list_style"`
	ShowNextCode     bool   `yaml:"show_next_code"`
	AutoFocusSearch  bool   `yaml:"auto_focus_search"`
	ShowBackupNotice bool   `yaml:"show_backup_notice"`
}

// UIConfig holds terminal presentation settings
type UIConfig struct {
	Locale  string `yaml:"locale,omitempty"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Theme:            "SYSTEM",
			ListStyle:        "LIST",
			ShowNextCode:     false,
			AutoFocusSearch:  false,
			ShowBackupNotice: true,
		},
		UI: UIConfig{
			NoColor: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write to a sibling and rename so watchers never observe a torn file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config: %w", err)
	}

	return nil
}

// Validate checks values that have a closed set of spellings
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// GetConfigPath returns the config file path, honouring OTPDECK_CONFIG
func GetConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "otpdeck", "config.yaml"), nil
}

// DefaultLogPath returns the log file used while the full-screen UI runs
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolving cache directory: %w", err)
	}
	return filepath.Join(dir, "otpdeck", "otpdeck.log"), nil
}
