package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// One terminal cell covers CellW x CellH world units, so a 16-unit tile is
// four columns by two rows and roughly square on screen.
const (
	CellW = 4.0
	CellH = 8.0
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Visual characters for rendering
const (
	GroundChar   = '█'
	PlatformChar = '▓'
	PlayerChar   = '█'
	EnemyChar    = '▒'
)

// inset keeps a box's right and bottom edge from spilling into the next cell.
const inset = 1e-6

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	snap := g.world.Snapshot()
	drawTerrain(dst, snap)

	for _, e := range snap.Enemies {
		if e.State != world.EnemyActive {
			continue
		}
		drawBox(dst, snap.Camera, e.Box, EnemyChar, core.ColorDarkRed)
	}
	drawBox(dst, snap.Camera, snap.Player.Box, PlayerChar, core.ColorBrightRed)

	g.drawHUD(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "P to resume  |  R to restart")
	}
}

// drawTerrain samples the grid at the centre of every playfield cell.
// Boundary tiles beyond a row's edge are left blank.
func drawTerrain(dst *core.Screen, snap world.Snapshot) {
	grid := snap.Grid
	for cy := hudRows; cy < dst.Height(); cy++ {
		wy := float64(cy-hudRows)*CellH + CellH/2
		if wy >= grid.PixelHeight() {
			break
		}
		for cx := 0; cx < dst.Width(); cx++ {
			wx := snap.Camera + float64(cx)*CellW + CellW/2
			switch grid.TileAt(wx, wy) {
			case world.TileGround:
				dst.SetColored(cx, cy, GroundChar, core.ColorBrown)
			case world.TilePlatform:
				dst.SetColored(cx, cy, PlatformChar, core.ColorOrange)
			}
		}
	}
}

// drawBox fills every playfield cell the box touches. Cells outside the
// playfield, including the HUD row, are never written.
func drawBox(dst *core.Screen, camera float64, b core.Box, r rune, c core.Color) {
	x0 := core.FloorDiv(b.X-camera, CellW)
	x1 := core.FloorDiv(b.Right()-camera-inset, CellW)
	y0 := hudRows + core.FloorDiv(b.Y, CellH)
	y1 := hudRows + core.FloorDiv(b.Bottom()-inset, CellH)

	cells := core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	if !cells.Intersects(field) {
		return
	}
	x0 = core.Clamp(x0, field.X, field.Right()-1)
	x1 = core.Clamp(x1, field.X, field.Right()-1)
	y0 = core.Clamp(y0, field.Y, field.Bottom()-1)
	y1 = core.Clamp(y1, field.Y, field.Bottom()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, r, c)
		}
	}
}

// drawHUD writes score and progress on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap world.Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Enemies: %d/%d  X: %d ",
		g.score, snap.Defeated, len(snap.Enemies), int(snap.Player.Box.X))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	title := g.level.Title()
	if x := dst.Width() - len(title) - 1; x > len(hud) {
		dst.DrawTextColored(x, 0, title, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
