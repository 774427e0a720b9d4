package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns the configuration directory, ~/.config/gojoke.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gojoke")
}

// DataDir returns the data directory, ~/.local/share/gojoke.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "gojoke")
}

// Load loads configuration from ~/.config/gojoke/config.yaml and the
// GOJOKE_* environment. Missing or invalid files keep the defaults.
func Load() Config {
	cfg := DefaultConfig()
	if api, err := LoadAPIFromEnv(); err == nil {
		cfg.API = api
	}

	dir := Dir()
	if dir == "" {
		return cfg.withPaths()
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		return cfg.withPaths()
	}

	fileCfg := cfg
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg.withPaths()
	}
	return fileCfg.withPaths()
}

// withPaths fills in the default log and storage locations.
func (c Config) withPaths() Config {
	data := DataDir()
	if data == "" {
		return c
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(data, "gojoke.log")
	}
	if c.StoragePath == "" {
		c.StoragePath = filepath.Join(data, "storage.db")
	}
	return c
}
