// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Study      StudyConfig      `toml:"study"`
	Calculator CalculatorConfig `toml:"calculator"`
}

// StudyConfig maps study-related settings.
type StudyConfig struct {
	Tab     *string `toml:"tab"`
	Content *string `toml:"content"`
	Shuffle *bool   `toml:"shuffle"`
	Seed    *int64  `toml:"seed"`
}

// CalculatorConfig maps the calculator's initial inputs.
type CalculatorConfig struct {
	Capital *float64 `toml:"capital"`
	Rate    *float64 `toml:"rate"`
	Periods *float64 `toml:"periods"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
