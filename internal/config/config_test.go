package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

// isolate points HOME and the working directory at empty temp dirs and
// clears overrides, so only the embedded defaults are visible.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvVariant, "")
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "replay:\n  variant: tiles_legacy\nviewer:\n  step_rate: 20\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Replay.Variant != "tiles_legacy" {
		t.Errorf("Variant = %q, expected tiles_legacy", cfg.Replay.Variant)
	}
	if cfg.Viewer.StepRate != 20 {
		t.Errorf("StepRate = %d, expected 20", cfg.Viewer.StepRate)
	}
	// unset keys keep their defaults
	if cfg.Storage.Path != Default().Storage.Path {
		t.Errorf("Storage.Path = %q, expected default", cfg.Storage.Path)
	}
	if cfg.Replay.MaxMoves != 1000000 {
		t.Errorf("MaxMoves = %d, expected 1000000", cfg.Replay.MaxMoves)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "viewer: [not, a, map\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestSearchOrder(t *testing.T) {
	dir := isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	writeFile(t, filepath.Join(dir, "configs", "tilescore.yaml"), "log:\n  level: warn\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("local config not used, Log.Level = %q", cfg.Log.Level)
	}

	writeFile(t, filepath.Join(home, ".tilescore", "config.yaml"), "log:\n  level: debug\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("user config should win over local, Log.Level = %q", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/tmp/elsewhere.db")
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvVariant, "tiles_legacy")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Storage.Path != "/tmp/elsewhere.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Replay.Variant != "tiles_legacy" {
		t.Errorf("Replay.Variant = %q", cfg.Replay.Variant)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), EnvVariant+"=from_dotenv\n")
	os.Unsetenv(EnvVariant) // godotenv never overrides a set variable, even an empty one

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Replay.Variant != "from_dotenv" {
		t.Errorf("Replay.Variant = %q, expected value from .env", cfg.Replay.Variant)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"default ok", func(*Config) {}, nil},
		{"empty path", func(c *Config) { c.Storage.Path = "  " }, ErrEmptyStoragePath},
		{"zero step rate", func(c *Config) { c.Viewer.StepRate = 0 }, ErrInvalidStepRate},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, ErrInvalidLogLevel},
		{"empty level", func(c *Config) { c.Log.Level = "" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := LogConfig{Level: "DEBUG"}.ParseLevel()
	if err != nil {
		t.Fatalf("ParseLevel() error: %v", err)
	}
	if lvl != log.DebugLevel {
		t.Errorf("ParseLevel() = %v, expected debug", lvl)
	}
}
