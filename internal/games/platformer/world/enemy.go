package world

// EnemyParams configures enemy patrol and the stomp interaction.
type EnemyParams struct {
	Size               float64 // Edge of the square enemy box
	PatrolSpeed        float64 // Units per tick along Dir
	DefeatedX          float64 // Off-world x a defeated enemy is parked at
	StompBounceDivisor float64 // Player bounce is JumpImpulse / divisor
}

// DefaultEnemyParams returns the reference enemy tuning.
func DefaultEnemyParams() EnemyParams {
	return EnemyParams{
		Size:               14,
		PatrolSpeed:        0.4,
		DefeatedX:          -1000,
		StompBounceDivisor: 1.5,
	}
}

// EnemyState tags whether an enemy still takes part in the simulation.
type EnemyState uint8

const (
	EnemyActive EnemyState = iota
	EnemyDefeated
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case EnemyActive:
		return "active"
	case EnemyDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Enemy is a patrolling actor. Enemies ignore gravity and stay on their
// spawn row.
type Enemy struct {
	Body
	Dir   int // +1 right, -1 left
	State EnemyState
}

// NewEnemy creates an active enemy from its spawn record.
func NewEnemy(p EnemyParams, s EnemySpawn) Enemy {
	dir := s.Dir
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return Enemy{
		Body: Body{
			X: s.X,
			Y: s.Y,
			W: p.Size,
			H: p.Size,
		},
		Dir: dir,
	}
}

// Active reports whether the enemy still patrols and interacts.
func (e *Enemy) Active() bool {
	return e.State == EnemyActive
}

// Patrol advances the enemy along Dir and reverses Dir when the new position
// collides. The colliding step is kept; the enemy walks back out next tick.
func (e *Enemy) Patrol(g *Grid, speed float64) {
	if !e.Active() {
		return
	}
	e.X += speed * float64(e.Dir)
	if g.RectCollides(e.X, e.Y, e.W, e.H) {
		e.Dir = -e.Dir
	}
}

// defeat parks the enemy off-world and removes it from play.
func (e *Enemy) defeat(offWorldX float64) {
	e.State = EnemyDefeated
	e.X = offWorldX
	e.VelX = 0
	e.VelY = 0
}

// Interaction is the outcome of a player/enemy contact test.
type Interaction int

const (
	InteractionNone  Interaction = iota
	InteractionStomp             // Enemy defeated, player bounced
	InteractionHurt              // Player sent back to spawn
)

// String returns a human-readable name for the interaction.
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionStomp:
		return "stomp"
	case InteractionHurt:
		return "hurt"
	default:
		return "unknown"
	}
}

// ResolveInteraction tests the player against one enemy's box. A descending
// player (VelY > 0) defeats the enemy and bounces; any other contact sends the
// player back to spawn. Defeated enemies never interact.
func ResolveInteraction(p *Player, e *Enemy, params EnemyParams, spawn Point) Interaction {
	if !e.Active() {
		return InteractionNone
	}
	if !p.Box().Overlaps(e.Box()) {
		return InteractionNone
	}

	if p.VelY > 0 {
		e.defeat(params.DefeatedX)
		p.VelY = p.JumpImpulse / params.StompBounceDivisor
		return InteractionStomp
	}

	p.Respawn(spawn)
	return InteractionHurt
}
