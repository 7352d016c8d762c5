package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultSolitaireConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSolitaireConfig() {
		t.Errorf("embedded default differs from DefaultSolitaireConfig():\n%+v\n%+v", cfg, DefaultSolitaireConfig())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SolitaireConfig)
		want   string
	}{
		{"zero travel speed", func(c *SolitaireConfig) { c.Transit.TravelSpeed = 0 }, "travel_speed"},
		{"fan too large", func(c *SolitaireConfig) { c.Layout.TableauFan = 1.5 }, "tableau_fan"},
		{"no talon", func(c *SolitaireConfig) { c.Layout.TalonVisible = 0 }, "talon_visible"},
		{"margins eat the screen", func(c *SolitaireConfig) { c.Layout.Margin = 0.5 }, "no room"},
		{"loud", func(c *SolitaireConfig) { c.Audio.Volume = 2 }, "volume"},
		{"bad aspect", func(c *SolitaireConfig) { c.Terminal.CardAspect = -1 }, "card_aspect"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSolitaireConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestParsePartialDocument(t *testing.T) {
	cfg, err := Parse([]byte("transit:\n  travel_speed: 4\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Transit.TravelSpeed != 4 {
		t.Errorf("TravelSpeed = %v, expected 4", cfg.Transit.TravelSpeed)
	}
	if cfg.Layout != DefaultSolitaireConfig().Layout {
		t.Errorf("unspecified layout should keep defaults, got %+v", cfg.Layout)
	}
}

func TestLoadSolitaireCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  talon_visible: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSolitaire(path)
	if err != nil {
		t.Fatalf("LoadSolitaire() failed: %v", err)
	}
	if cfg.Layout.TalonVisible != 1 {
		t.Errorf("TalonVisible = %d, expected 1", cfg.Layout.TalonVisible)
	}
}

func TestLoadSolitaireErrors(t *testing.T) {
	if _, err := LoadSolitaire(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("transit:\n  travel_speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSolitaire(path); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		flag string
		want float64
	}{
		{"", 2.5},
		{"slow", 1.25},
		{"normal", 2.5},
		{"fast", 5.0},
		{"instant", instantTravelSpeed},
	}

	for _, tc := range tests {
		t.Run(tc.flag, func(t *testing.T) {
			preset, err := ParseSpeedPreset(tc.flag)
			if err != nil {
				t.Fatalf("ParseSpeedPreset(%q) failed: %v", tc.flag, err)
			}
			cfg := DefaultSolitaireConfig()
			ApplySpeedPreset(&cfg, preset)
			if cfg.Transit.TravelSpeed != tc.want {
				t.Errorf("TravelSpeed = %v, expected %v", cfg.Transit.TravelSpeed, tc.want)
			}
		})
	}

	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
