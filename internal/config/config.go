// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Player     PlatformerPlayer  `yaml:"player"`
	Enemy      PlatformerEnemy   `yaml:"enemy"`
	Camera     PlatformerCamera  `yaml:"camera"`
	Input      InputConfig       `yaml:"input"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines world-wide physics parameters.
type PlatformerPhysics struct {
	Gravity         float64 `yaml:"gravity"`           // Added to vertical velocity every tick
	Friction        float64 `yaml:"friction"`          // Horizontal velocity multiplier per tick
	TileSize        float64 `yaml:"tile_size"`         // Edge of one grid cell in world units
	KillPlaneMargin float64 `yaml:"kill_plane_margin"` // Depth below the grid that respawns the player; 0 disables
}

// PlatformerPlayer defines the controlled actor.
type PlatformerPlayer struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	StompBounceDivisor float64 `yaml:"stomp_bounce_divisor"`
}

// PlatformerEnemy defines the patrolling enemies.
type PlatformerEnemy struct {
	Size        float64 `yaml:"size"`
	PatrolSpeed float64 `yaml:"patrol_speed"`
	DefeatedX   float64 `yaml:"defeated_x"`
	StompPoints int     `yaml:"stomp_points"`
}

// PlatformerCamera defines horizontal scrolling.
type PlatformerCamera struct {
	LeadDistance   float64 `yaml:"lead_distance"`
	ResetOnRespawn bool    `yaml:"reset_on_respawn"`
}

// InputConfig tunes input handling for hosts without key release events.
type InputConfig struct {
	// HoldTicks is how long a key counts as held after its last press or
	// auto-repeat in the terminal.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to patrol speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
