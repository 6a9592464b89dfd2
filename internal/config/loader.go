package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath returns $XDG_CONFIG_HOME/intpick/config.toml, falling back to
// the user config directory of the platform.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "intpick", "config.toml"), nil
}

// Load reads config from path, applying defaults for missing values.
// A file that defines any pickers replaces the default pickers entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if md.IsDefined("pickers") {
		cfg.Pickers = file.Pickers
	}
	if md.IsDefined("logging", "level") {
		cfg.Logging.Level = file.Logging.Level
	}
	if md.IsDefined("logging", "file") {
		cfg.Logging.File = file.Logging.File
	}

	return cfg, nil
}

// Save writes config to path, creating its directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}
