// Package touch lays out the on-screen movement buttons and tracks which
// pointers are holding them. It has no windowing dependency; the window host
// feeds it pointer positions in logical screen pixels.
package touch

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Button identifies an on-screen control.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonJump
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonJump:
		return "jump"
	default:
		return "none"
	}
}

// Circle is a round button in logical pixels.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether the point lies inside the circle.
func (c Circle) Contains(x, y float64) bool {
	return math.Hypot(x-c.X, y-c.Y) <= c.R
}

// Layout places the three buttons: left and right in the bottom-left corner,
// jump in the bottom-right corner.
type Layout struct {
	Left  Circle
	Right Circle
	Jump  Circle
}

// Button sizes in logical pixels.
const (
	ButtonRadius = 10.0
	ButtonMargin = 7.0
)

// DefaultLayout returns the button layout for a view of the given size.
func DefaultLayout(viewW, viewH int) Layout {
	d := 2 * ButtonRadius
	cy := float64(viewH) - ButtonMargin - ButtonRadius
	return Layout{
		Left:  Circle{X: ButtonMargin + ButtonRadius, Y: cy, R: ButtonRadius},
		Right: Circle{X: 2*ButtonMargin + d + ButtonRadius, Y: cy, R: ButtonRadius},
		Jump:  Circle{X: float64(viewW) - ButtonMargin - ButtonRadius, Y: cy, R: ButtonRadius},
	}
}

// Hit returns the button under the point, or ButtonNone.
func (l Layout) Hit(x, y float64) Button {
	switch {
	case l.Left.Contains(x, y):
		return ButtonLeft
	case l.Right.Contains(x, y):
		return ButtonRight
	case l.Jump.Contains(x, y):
		return ButtonJump
	}
	return ButtonNone
}

// Circle returns the geometry of b.
func (l Layout) Circle(b Button) Circle {
	switch b {
	case ButtonLeft:
		return l.Left
	case ButtonRight:
		return l.Right
	default:
		return l.Jump
	}
}

// Pointers tracks which pointer holds which button. A press on a button
// holds it until that pointer is released, wherever the pointer moves.
type Pointers struct {
	layout Layout
	down   map[int]Button
}

// NewPointers creates an empty tracker for the given layout.
func NewPointers(layout Layout) *Pointers {
	return &Pointers{
		layout: layout,
		down:   make(map[int]Button),
	}
}

// Layout returns the tracked button layout.
func (p *Pointers) Layout() Layout {
	return p.layout
}

// Press records pointer id going down at (x, y). Presses outside every
// button are ignored.
func (p *Pointers) Press(id int, x, y float64) Button {
	b := p.layout.Hit(x, y)
	if b != ButtonNone {
		p.down[id] = b
	}
	return b
}

// Release forgets pointer id.
func (p *Pointers) Release(id int) {
	delete(p.down, id)
}

// Tracking reports whether pointer id currently holds a button.
func (p *Pointers) Tracking(id int) bool {
	_, ok := p.down[id]
	return ok
}

// IDs returns the pointers currently holding a button.
func (p *Pointers) IDs() []int {
	ids := make([]int, 0, len(p.down))
	for id := range p.down {
		ids = append(ids, id)
	}
	return ids
}

// Held reports whether any pointer holds b.
func (p *Pointers) Held(b Button) bool {
	for _, held := range p.down {
		if held == b {
			return true
		}
	}
	return false
}

// Intent returns the movement intent of all held buttons.
func (p *Pointers) Intent() core.Intent {
	return core.Intent{
		Left:  p.Held(ButtonLeft),
		Right: p.Held(ButtonRight),
		Jump:  p.Held(ButtonJump),
	}
}
