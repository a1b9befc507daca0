package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/chorin/internal/config/colors"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  complete: "#00FF00"
  priority_high: "#0000FF"
`)
	themePath := filepath.Join(t.TempDir(), "chorin-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("CHORIN_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Complete != "#00FF00" {
		t.Errorf("Complete = %s, want #00FF00", cfg.ColorScheme.Complete)
	}
	if cfg.ColorScheme.PriorityHigh != "#0000FF" {
		t.Errorf("PriorityHigh = %s, want #0000FF", cfg.ColorScheme.PriorityHigh)
	}

	// Untouched values keep the default preset
	if cfg.ColorScheme.Subtle != DefaultColorScheme().Subtle {
		t.Errorf("Subtle = %s, want default %s", cfg.ColorScheme.Subtle, DefaultColorScheme().Subtle)
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CHORIN_THEME_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme != DefaultColorScheme() {
		t.Error("missing theme file should leave the default scheme untouched")
	}
}

func TestGetPreset(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"default", "default"},
		{"monochrome", "monochrome"},
		{"hayfield", "hayfield"},
		{"", "default"},
		{"does-not-exist", "default"},
	}

	for _, tt := range tests {
		if got := colors.GetPreset(tt.name).Preset; got != tt.want {
			t.Errorf("GetPreset(%q).Preset = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPresetsAreComplete(t *testing.T) {
	for _, name := range []string{"default", "monochrome", "hayfield"} {
		preset := *colors.GetPreset(name)
		filled := preset
		filled.ApplyDefaults()
		if filled != preset {
			t.Errorf("preset %q has empty color slots", name)
		}
	}
}

func TestMergeFromRebasesOnPreset(t *testing.T) {
	scheme := DefaultColorScheme()
	scheme.MergeFrom(colors.ColorScheme{Preset: "hayfield", Title: "#ABCDEF"})

	if scheme.Preset != "hayfield" {
		t.Errorf("Preset = %s, want hayfield", scheme.Preset)
	}
	if scheme.Title != "#ABCDEF" {
		t.Errorf("Title = %s, want #ABCDEF", scheme.Title)
	}
	if scheme.Background != colors.Hayfield().Background {
		t.Errorf("Background = %s, want hayfield background", scheme.Background)
	}
}
