// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "olitef"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultContentPath returns where a user content pack is picked up
// automatically when no --content flag or config value is given.
func DefaultContentPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "content.toml")
}
