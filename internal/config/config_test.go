package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg.Study.Tab != nil || cfg.Calculator.Capital != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
[study]
tab = "quiz"
shuffle = true
seed = 42

[calculator]
capital = 2500.5
rate = 0.8
periods = 24
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Study.Tab == nil || *cfg.Study.Tab != "quiz" {
		t.Fatalf("unexpected tab: %v", cfg.Study.Tab)
	}
	if cfg.Study.Shuffle == nil || !*cfg.Study.Shuffle || cfg.Study.Seed == nil || *cfg.Study.Seed != 42 {
		t.Fatalf("unexpected shuffle settings: %+v", cfg.Study)
	}
	if cfg.Study.Content != nil {
		t.Fatalf("content should stay unset")
	}
	if *cfg.Calculator.Capital != 2500.5 || *cfg.Calculator.Rate != 0.8 || *cfg.Calculator.Periods != 24 {
		t.Fatalf("unexpected calculator config: %+v", cfg.Calculator)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[calculator]\ncapitol = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "calculator.capitol") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := DefaultConfigPath(); got != filepath.Join(dir, "olitef", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultContentPath(); got != filepath.Join(dir, "olitef", "content.toml") {
		t.Fatalf("unexpected content path %q", got)
	}
}
