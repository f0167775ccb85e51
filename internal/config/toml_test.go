package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Drill.Digits != nil || cfg.Drill.Trials != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[drill]\ndigits = 2\ntrials = 25\nvolume = 0.5\nvoice = \"serena\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Drill.Digits == nil || *cfg.Drill.Digits != 2 {
		t.Fatalf("digits = %v, want 2", cfg.Drill.Digits)
	}
	if cfg.Drill.Trials == nil || *cfg.Drill.Trials != 25 {
		t.Fatalf("trials = %v, want 25", cfg.Drill.Trials)
	}
	if cfg.Drill.Volume == nil || *cfg.Drill.Volume != 0.5 {
		t.Fatalf("volume = %v, want 0.5", cfg.Drill.Volume)
	}
	if cfg.Drill.Voice == nil || *cfg.Drill.Voice != "serena" {
		t.Fatalf("voice = %v, want serena", cfg.Drill.Voice)
	}
	if cfg.Drill.Mute != nil {
		t.Fatalf("mute should be unset, got %v", *cfg.Drill.Mute)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
