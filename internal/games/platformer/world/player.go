package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// PlayerParams configures the player actor.
type PlayerParams struct {
	Width       float64
	Height      float64
	Speed       float64 // Horizontal speed while a direction is held
	JumpImpulse float64 // Negative: up is -Y
}

// DefaultPlayerParams returns the reference player tuning.
func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		Width:       14,
		Height:      14,
		Speed:       1.4,
		JumpImpulse: -7,
	}
}

// Player is the controlled actor.
type Player struct {
	Body
	Speed       float64
	JumpImpulse float64
}

// NewPlayer places a player at the given spawn point.
func NewPlayer(p PlayerParams, spawn Point) Player {
	return Player{
		Body: Body{
			X: spawn.X,
			Y: spawn.Y,
			W: p.Width,
			H: p.Height,
		},
		Speed:       p.Speed,
		JumpImpulse: p.JumpImpulse,
	}
}

// Step applies one tick of intent, gravity, friction and movement.
//
// Horizontal velocity is overwritten from intent, not accumulated; left wins
// when both directions are held. Jump fires only while grounded and clears
// grounded the same tick, so holding it triggers once per ground contact.
func (p *Player) Step(g *Grid, phys Physics, in core.Intent) {
	switch {
	case in.Left:
		p.VelX = -p.Speed
	case in.Right:
		p.VelX = p.Speed
	default:
		p.VelX = 0
	}

	if in.Jump && p.Grounded {
		p.VelY = p.JumpImpulse
		p.Grounded = false
	}

	p.VelY += phys.Gravity
	p.VelX *= phys.Friction

	Move(g, &p.Body)
}

// Respawn moves the player to the spawn point and clears its motion.
func (p *Player) Respawn(spawn Point) {
	p.X = spawn.X
	p.Y = spawn.Y
	p.VelX = 0
	p.VelY = 0
	p.Grounded = false
}
