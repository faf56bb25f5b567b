package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.General.Currency != "৳" {
		t.Errorf("Currency = %q, want default taka symbol", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Advisor.Model = "gemini-2.0-flash"
	cfg.General.DataDir = "/tmp/hisab-test"

	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Advisor.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", got.Advisor.Model)
	}
	if got.General.DataDir != "/tmp/hisab-test" {
		t.Errorf("DataDir = %q", got.General.DataDir)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "hisab"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hisab", "config.toml"), []byte("[[["), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error on malformed config")
	}
}

func TestGetAPIKeyPrefersEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := Config{Advisor: AdvisorConfig{APIKey: "file-key"}}
	if got := GetAPIKey(cfg); got != "env-key" {
		t.Errorf("GetAPIKey = %q, want env-key", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := GetAPIKey(cfg); got != "file-key" {
		t.Errorf("GetAPIKey = %q, want file-key", got)
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := Config{General: GeneralConfig{DataDir: "/custom"}}
	if got := DBPath(cfg); got != filepath.Join("/custom", "hisab.db") {
		t.Errorf("DBPath = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", "/xdg-data")
	if got := DataDir(Config{}); got != filepath.Join("/xdg-data", "hisab") {
		t.Errorf("DataDir = %q", got)
	}
}
