package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/olitef/internal/content"
	"github.com/verte-zerg/olitef/internal/interest"
	"github.com/verte-zerg/olitef/internal/model"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	out, err := runCLI(t, "calc", "--capital", "1000", "--rate", "1", "--periods", "12", "--table", "3")
	if err != nil {
		t.Fatalf("calc failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		"R$ 1.000,00",
		"R$ 1.120,00",
		"R$ 1.126,83",
		"juros R$ 126,83",
		"Montante Composto",
		"Período",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "R$ 1.040,00") || !strings.Contains(out, "R$ 1.040,60") {
		t.Fatalf("expected projection row for period 4:\n%s", out)
	}
}

func TestCalcCommandRejectsInvalidInput(t *testing.T) {
	if _, err := runCLI(t, "calc", "--capital", "0"); err == nil {
		t.Fatalf("expected error for zero capital")
	}
	if _, err := runCLI(t, "calc", "--table=-1"); err == nil {
		t.Fatalf("expected error for negative table size")
	}
}

func TestCalcCommandUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgPath := filepath.Join(dir, "olitef", "config.toml")
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(cfgPath, []byte("[calculator]\ncapital = 2000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"calc", "--rate", "1", "--periods", "12"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if !strings.Contains(out.String(), "R$ 2.240,00") {
		t.Fatalf("expected config capital to be used:\n%s", out.String())
	}

	cmd = newRootCmd()
	out.Reset()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"calc", "--capital", "1000", "--rate", "1", "--periods", "12"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("calc failed: %v", err)
	}
	if !strings.Contains(out.String(), "R$ 1.120,00") {
		t.Fatalf("expected flag to override config:\n%s", out.String())
	}
}

func TestContentExportRoundTrips(t *testing.T) {
	out, err := runCLI(t, "content", "export")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "content.toml")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	check, err := runCLI(t, "content", "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(check, "Guia OLITEF") || !strings.Contains(check, "Juros") || !strings.Contains(check, "Fácil") {
		t.Fatalf("unexpected summary:\n%s", check)
	}
}

func TestContentCheckRejectsInvalidPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("title = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}
	if _, err := runCLI(t, "content", "check", path); err == nil {
		t.Fatalf("expected invalid pack error")
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{Tab: "quiz"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateConfig(model.Config{Tab: "stats"}); err == nil {
		t.Fatalf("expected unknown tab error")
	}
	if err := validateConfig(model.Config{Calculator: model.CalculatorDefaults{Rate: -1}}); err == nil {
		t.Fatalf("expected negative rate error")
	}
}

func TestResolveContentPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := resolveContentPath(""); got != "" {
		t.Fatalf("expected built-in pack, got %q", got)
	}
	if got := resolveContentPath("custom.toml"); got != "custom.toml" {
		t.Fatalf("expected explicit path, got %q", got)
	}
	userPack := filepath.Join(dir, "olitef", "content.toml")
	if err := os.MkdirAll(filepath.Dir(userPack), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(userPack, content.DefaultTOML(), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if got := resolveContentPath(""); got != userPack {
		t.Fatalf("expected user pack, got %q", got)
	}
}

func TestBuildDecksShuffleIsSeeded(t *testing.T) {
	pack, err := content.Default()
	if err != nil {
		t.Fatalf("default pack: %v", err)
	}
	cfg := model.Config{Shuffle: true, Seed: 7}
	cardsA, quizA, err := buildDecks(pack, cfg)
	if err != nil {
		t.Fatalf("buildDecks: %v", err)
	}
	cardsB, quizB, err := buildDecks(pack, cfg)
	if err != nil {
		t.Fatalf("buildDecks: %v", err)
	}
	for i := 0; i < cardsA.Len(); i++ {
		a, b := cardsA.Category(i).Items, cardsB.Category(i).Items
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("same seed should give the same card order")
			}
		}
	}
	if quizA.TotalItems() != quizB.TotalItems() {
		t.Fatalf("quiz decks differ in size")
	}
}

func TestFormatPeriod(t *testing.T) {
	if got := formatPeriod(12); got != "12" {
		t.Fatalf("unexpected whole period %q", got)
	}
	if got := formatPeriod(2.5); got != interest.FormatAmount(2.5) {
		t.Fatalf("unexpected fractional period %q", got)
	}
}
