package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	dm := NewDifficultyManager(DefaultPlatformerConfig().Difficulty)
	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := dm.Speed(0.4, 5000, 5000); got != 0.4 {
		t.Errorf("Speed = %v, want 0.4", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&cfg, DifficultyNormal)
	dm := NewDifficultyManager(cfg.Difficulty)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.3},
		{450, 0.65},
		{900, 1.0},
		{5000, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	want := 0.4 * (1 + 1.5)
	if got := dm.Speed(0.4, 900, 0); math.Abs(got-want) > 1e-9 {
		t.Errorf("Speed at max = %v, want %v", got, want)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	})
	if got := dm.Level(0, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level = %v, want 0.5", got)
	}
}

func TestInitialLevelClamped(t *testing.T) {
	tests := []struct {
		name    string
		initial float64
		want    float64
	}{
		{"above range", 3, 1},
		{"below range", -0.5, 0},
		{"in range", 0.7, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDifficultyManager(DifficultyConfig{InitialLevel: tt.initial})
			if got := dm.Level(0, 0); got != tt.want {
				t.Errorf("Level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixedProgressionStillScales(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 1},
	})
	if !dm.IsEnabled() {
		t.Fatal("enabled config with no progression should still scale")
	}
	if got := dm.Speed(0.4, 5000, 5000); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("Speed = %v, want 0.6", got)
	}
}
