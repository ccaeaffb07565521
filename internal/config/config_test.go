package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	doc := "physics:\n  gravity: 0.5\nenemy:\n  stomp_points: 250\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("gravity = %v, want 0.5", cfg.Physics.Gravity)
	}
	if cfg.Enemy.StompPoints != 250 {
		t.Errorf("stomp_points = %d, want 250", cfg.Enemy.StompPoints)
	}
	if cfg.Physics.Friction != 0.85 || cfg.Player.JumpImpulse != -7 {
		t.Errorf("unset keys lost defaults: %+v", cfg)
	}
}

func TestLoadPlatformerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPlatformer(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
		})
	}

	t.Run("empty is a no-op", func(t *testing.T) {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, "")
		if cfg != DefaultPlatformerConfig() {
			t.Error("empty preset changed the config")
		}
	})
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) rejected", name)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
	}{
		{"tile size", func(c *PlatformerConfig) { c.Physics.TileSize = 0 }},
		{"player size", func(c *PlatformerConfig) { c.Player.Width = -1 }},
		{"enemy size", func(c *PlatformerConfig) { c.Enemy.Size = 0 }},
		{"bounce divisor", func(c *PlatformerConfig) { c.Player.StompBounceDivisor = 0 }},
		{"hold ticks", func(c *PlatformerConfig) { c.Input.HoldTicks = 0 }},
	}

	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
