package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// Physics holds the per-tick integration constants.
type Physics struct {
	Gravity  float64 // Added to VelY every tick
	Friction float64 // VelX is multiplied by this every tick
}

// DefaultPhysics returns the reference constants.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:  0.35,
		Friction: 0.85,
	}
}

// Axis selects the component moved by IntegrateAxis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Body is the movable shape shared by the player and enemies.
type Body struct {
	X, Y       float64 // Top-left corner in world units
	VelX, VelY float64
	W, H       float64
	Grounded   bool // Set only by a downward vertical collision
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// IntegrateAxis moves the body by delta along one axis and resolves the move
// against the grid. On collision the displacement is undone and that axis's
// velocity is zeroed; a blocked downward move also marks the body grounded.
// It reports whether the move was blocked.
func IntegrateAxis(g *Grid, b *Body, axis Axis, delta float64) bool {
	switch axis {
	case AxisX:
		prev := b.X
		b.X += delta
		if !g.RectCollides(b.X, b.Y, b.W, b.H) {
			return false
		}
		b.X = prev
		b.VelX = 0
		return true

	case AxisY:
		prev := b.Y
		b.Y += delta
		if !g.RectCollides(b.X, b.Y, b.W, b.H) {
			return false
		}
		b.Y = prev
		if b.VelY > 0 {
			b.Grounded = true
		}
		b.VelY = 0
		return true
	}
	return false
}

// Move applies the body's velocity horizontally then vertically.
// The horizontal pass always runs first so a vertical landing never eats
// the horizontal step of the same tick.
func Move(g *Grid, b *Body) {
	IntegrateAxis(g, b, AxisX, b.VelX)
	b.Grounded = false
	IntegrateAxis(g, b, AxisY, b.VelY)
}
