package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// Params maps the YAML configuration onto world tuning.
func Params(cfg config.PlatformerConfig) world.Params {
	return world.Params{
		TileSize: cfg.Physics.TileSize,
		Physics: world.Physics{
			Gravity:  cfg.Physics.Gravity,
			Friction: cfg.Physics.Friction,
		},
		Player: world.PlayerParams{
			Width:       cfg.Player.Width,
			Height:      cfg.Player.Height,
			Speed:       cfg.Player.Speed,
			JumpImpulse: cfg.Player.JumpImpulse,
		},
		Enemy: world.EnemyParams{
			Size:               cfg.Enemy.Size,
			PatrolSpeed:        cfg.Enemy.PatrolSpeed,
			DefeatedX:          cfg.Enemy.DefeatedX,
			StompBounceDivisor: cfg.Player.StompBounceDivisor,
		},
		Lead:                 cfg.Camera.LeadDistance,
		KillPlaneMargin:      cfg.Physics.KillPlaneMargin,
		ResetCameraOnRespawn: cfg.Camera.ResetOnRespawn,
	}
}
