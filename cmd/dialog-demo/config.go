package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/imoya/tuidialog/logging"
)

// ConfigFileName is the TOML config file for demo preferences.
const ConfigFileName = "config.toml"

// Config represents the demo's user-facing configuration in TOML format.
type Config struct {
	// UI defines presentation settings.
	UI UISettings `toml:"ui"`

	// Logs defines diagnostic logging settings.
	Logs LogSettings `toml:"logs"`

	// State defines dialog-state persistence settings.
	State StateSettings `toml:"state"`
}

// UISettings defines presentation configuration.
type UISettings struct {
	// PositiveLabel overrides the default "OK" button label.
	PositiveLabel string `toml:"positive_label"`

	// NegativeLabel overrides the default "Cancel" button label.
	NegativeLabel string `toml:"negative_label"`

	// AccentColor is the lipgloss color for focused elements.
	// Default: "205"
	AccentColor string `toml:"accent_color"`

	// BorderColor is the lipgloss color for dialog borders.
	// Default: "6"
	BorderColor string `toml:"border_color"`
}

// LogSettings defines diagnostic logging configuration.
type LogSettings struct {
	// Level is the minimum log level: "none" (default), "debug", "info",
	// "warn", "error"
	Level string `toml:"level"`

	// Dir is the log directory. Default: the config directory.
	Dir string `toml:"dir"`

	// Format is "json" (default) or "text"
	Format string `toml:"format"`

	// MaxSizeMB is the max log size in MB before rotation (default: 10)
	MaxSizeMB int `toml:"max_size_mb"`
}

// StateSettings defines dialog-state persistence configuration.
type StateSettings struct {
	// Enabled persists open dialogs across restarts (default: true).
	Enabled bool `toml:"enabled"`

	// Path is the state file location. Default: dialogs.json in the
	// config directory.
	Path string `toml:"path"`
}

var (
	configMu     sync.RWMutex
	cachedConfig *Config
)

// ConfigDir returns the demo's config directory, creating it on demand.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "tuidialog-demo")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// ConfigPath returns the full path of the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			AccentColor: "205",
			BorderColor: "6",
		},
		Logs: LogSettings{
			Level:     logging.LevelNone,
			Format:    "json",
			MaxSizeMB: 10,
		},
		State: StateSettings{Enabled: true},
	}
}

// LoadConfig reads the config file, caching the result. A missing file
// yields the defaults; a malformed file is an error so typos do not
// silently reset preferences.
func LoadConfig() (*Config, error) {
	configMu.RLock()
	if cachedConfig != nil {
		defer configMu.RUnlock()
		return cachedConfig, nil
	}
	configMu.RUnlock()
	return ReloadConfig()
}

// ReloadConfig re-reads the config file, bypassing the cache. Used by
// the config watcher on external edits.
func ReloadConfig() (*Config, error) {
	configMu.Lock()
	defer configMu.Unlock()

	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cachedConfig = cfg
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	cachedConfig = cfg
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.UI.AccentColor == "" {
		cfg.UI.AccentColor = "205"
	}
	if cfg.UI.BorderColor == "" {
		cfg.UI.BorderColor = "6"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = logging.LevelNone
	}
	if cfg.Logs.Format == "" {
		cfg.Logs.Format = "json"
	}
	if cfg.Logs.MaxSizeMB <= 0 {
		cfg.Logs.MaxSizeMB = 10
	}
}

// StatePath resolves the dialog-state file location.
func (c *Config) StatePath() (string, error) {
	if c.State.Path != "" {
		return c.State.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dialogs.json"), nil
}

// LogDir resolves the log directory.
func (c *Config) LogDir() (string, error) {
	if c.Logs.Dir != "" {
		return c.Logs.Dir, nil
	}
	return ConfigDir()
}
