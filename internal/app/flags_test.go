package app

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "counters", "-scale", "32", "-seed", "5", "-log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "counters" || cfg.Scale != 32 || cfg.Seed != 5 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	explicit := ExplicitFlags(fs)
	if !explicit["scale"] || explicit["hud"] {
		t.Fatalf("ExplicitFlags = %v", explicit)
	}
}

func TestSimOptionsMergesFiles(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "g.yaml")
	envPath := filepath.Join(dir, "g.env")
	if err := os.WriteFile(yamlPath, []byte("seed: 3\nmode: toggle\nscale: 48\nlogLevel: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(envPath, []byte("PINEAPPLES_SEED=4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	cfg.ConfigFile = yamlPath
	cfg.EnvFile = envPath
	opts, err := cfg.SimOptions(map[string]bool{"log-level": true})
	if err != nil {
		t.Fatalf("SimOptions: %v", err)
	}
	if opts["seed"] != "4" || opts["mode"] != "toggle" {
		t.Fatalf("opts = %v", opts)
	}
	if cfg.Scale != 48 {
		t.Fatalf("scale from file not applied: %d", cfg.Scale)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("explicit log level overwritten: %q", cfg.LogLevel)
	}

	cfg.Seed = 11
	opts, err = cfg.SimOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts["seed"] != "11" {
		t.Fatalf("-seed should win, got %q", opts["seed"])
	}
}

func TestSimOptionsMissingFile(t *testing.T) {
	cfg := NewConfig()
	cfg.ConfigFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.SimOptions(nil); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if lvl, _ := ParseLevel("DEBUG"); lvl != slog.LevelDebug {
		t.Fatalf("ParseLevel(DEBUG) = %v", lvl)
	}
}
