package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.CompleteChore != "c" {
		t.Errorf("Default CompleteChore key = %s, want c", defaults.CompleteChore)
	}
	if defaults.ObviateChore != "o" {
		t.Errorf("Default ObviateChore key = %s, want o", defaults.ObviateChore)
	}
	if defaults.AbrogateChore != "delete" {
		t.Errorf("Default AbrogateChore key = %s, want delete", defaults.AbrogateChore)
	}
	if defaults.ResolveChore != "enter" {
		t.Errorf("Default ResolveChore key = %s, want enter", defaults.ResolveChore)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Loaded config preset = %s, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "chorin")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `key_mappings:
  quit: "x"
  complete_chore: "d"
theme:
  preset: "monochrome"
  accent: "#123456"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.CompleteChore != "d" {
		t.Errorf("Loaded CompleteChore key = %s, want d", cfg.KeyMappings.CompleteChore)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.ObviateChore != "o" {
		t.Errorf("Loaded ObviateChore key = %s, want o (default)", cfg.KeyMappings.ObviateChore)
	}

	// Theme: explicit value wins, the rest comes from the named preset
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Loaded Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Background != MonochromeColorScheme().Background {
		t.Errorf("Loaded Background = %s, want monochrome background", cfg.ColorScheme.Background)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key_mappings: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with malformed YAML should fail")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() on missing file failed: %v", err)
	}
	if cfg.KeyMappings != DefaultKeyMappings() {
		t.Errorf("LoadFile() on missing file = %+v, want defaults", cfg.KeyMappings)
	}
}
