package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:         0.35,
			Friction:        0.85,
			TileSize:        16,
			KillPlaneMargin: 64,
		},
		Player: PlatformerPlayer{
			Width:              14,
			Height:             14,
			Speed:              1.4,
			JumpImpulse:        -7,
			StompBounceDivisor: 1.5,
		},
		Enemy: PlatformerEnemy{
			Size:        14,
			PatrolSpeed: 0.4,
			DefeatedX:   -1000,
			StompPoints: 100,
		},
		Camera: PlatformerCamera{
			LeadDistance:   100,
			ResetOnRespawn: true,
		},
		Input: InputConfig{
			HoldTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 900,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
			},
		},
	}
}
