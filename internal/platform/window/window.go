// Package window runs the platformer in a desktop or mobile window using
// Ebitengine. Unlike the terminal host it sees real key releases and
// touches, so input is level-triggered exactly as the simulation expects.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/platform/window/touch"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Logical view size in pixels.
const (
	ViewW = 256
	ViewH = 240
)

// mousePointer is the pointer ID used for the left mouse button, so touch
// buttons can be clicked on desktop.
const mousePointer = -1

// Palette of the window host.
var (
	GroundColor   = color.RGBA{R: 0x7c, G: 0x3f, B: 0x00, A: 0xff}
	PlatformColor = color.RGBA{R: 0xb5, G: 0x65, B: 0x1d, A: 0xff}
	PlayerColor   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	EnemyColor    = color.RGBA{R: 0x5a, G: 0x00, B: 0x00, A: 0xff}
	hudBackdrop   = color.RGBA{A: 0x99}
	buttonFill    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
)

// Game is what the window host needs from a game: the arcade contract plus
// a render-ready snapshot of the world.
type Game interface {
	registry.Game
	Snapshot() world.Snapshot
}

// LevelReloader is implemented by games that can swap their level at runtime.
type LevelReloader interface {
	ReloadLevel(path string) error
}

// Options configures the window host.
type Options struct {
	Scale        int           // Window pixels per logical pixel
	TickRate     int           // Simulation ticks per second
	Title        string        // Window title
	LevelChanges <-chan string // Level files changed on disk; nil disables hot reload
	Logger       *log.Logger
}

// Host adapts a Game to ebiten.Game.
type Host struct {
	game     Game
	opts     Options
	logger   *log.Logger
	intent   *core.IntentCell
	pointers *touch.Pointers
	frame    core.InputFrame
	status   string
}

// NewHost creates a window host for game. The game is reset immediately.
func NewHost(game Game, opts Options) *Host {
	if opts.Scale <= 0 {
		opts.Scale = 3
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Title == "" {
		opts.Title = game.Title()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(core.RuntimeConfig{ScreenW: ViewW, ScreenH: ViewH, TickRate: opts.TickRate})

	return &Host{
		game:     game,
		opts:     opts,
		logger:   logger,
		intent:   &core.IntentCell{},
		pointers: touch.NewPointers(touch.DefaultLayout(ViewW, ViewH)),
		frame:    core.NewInputFrame(),
	}
}

// Intent returns the latch the host writes held input into. Other
// goroutines may drive the player through it as well.
func (h *Host) Intent() *core.IntentCell {
	return h.intent
}

// Update polls input and advances the simulation by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	h.pollLevelChanges()
	h.pollPointers()
	h.intent.Store(mergeIntent(pollKeys(), pollGamepads(), h.pointers.Intent()))

	h.frame.Clear()
	h.frame.Apply(h.intent.Snapshot())
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.frame.Set(core.ActionRestart)
		h.status = ""
	}

	h.game.Step(h.frame)
	return nil
}

// pollKeys reads the keyboard. Arrows and space are the classic layout;
// A/D/W mirror them.
func pollKeys() core.Intent {
	return core.Intent{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
	}
}

// pollGamepads reads every standard-layout gamepad.
func pollGamepads() core.Intent {
	var in core.Intent
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Left = in.Left || x < -0.3 ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || x > 0.3 ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}

// pollPointers presses buttons for new touches and mouse clicks and releases
// them when the touch or click ends.
func (h *Host) pollPointers() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		h.pointers.Press(int(id), float64(x), float64(y))
	}
	for _, id := range h.pointers.IDs() {
		if id == mousePointer {
			continue
		}
		if inpututil.IsTouchJustReleased(ebiten.TouchID(id)) {
			h.pointers.Release(id)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.pointers.Press(mousePointer, float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.pointers.Release(mousePointer)
	}
}

// pollLevelChanges applies at most one pending level change per tick.
func (h *Host) pollLevelChanges() {
	if h.opts.LevelChanges == nil {
		return
	}
	select {
	case path, ok := <-h.opts.LevelChanges:
		if !ok {
			h.opts.LevelChanges = nil
			return
		}
		reloader, ok := h.game.(LevelReloader)
		if !ok {
			return
		}
		if err := reloader.ReloadLevel(path); err != nil {
			h.logger.Warn("level reload failed", "path", path, "error", err)
			h.status = "reload failed"
			return
		}
		h.status = ""
	default:
	}
}

// mergeIntent ORs every input source.
func mergeIntent(sources ...core.Intent) core.Intent {
	var out core.Intent
	for _, s := range sources {
		out.Left = out.Left || s.Left
		out.Right = out.Right || s.Right
		out.Jump = out.Jump || s.Jump
	}
	return out
}

// Draw renders the latest snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.White)

	snap := h.game.Snapshot()
	drawTerrain(screen, snap)

	for _, e := range snap.Enemies {
		if e.State != world.EnemyActive {
			continue
		}
		fillBox(screen, snap.Camera, e.Box, EnemyColor)
	}
	fillBox(screen, snap.Camera, snap.Player.Box, PlayerColor)

	h.drawHUD(screen, snap)
	h.drawButtons(screen)
}

// drawTerrain fills the visible ground and platform tiles.
func drawTerrain(screen *ebiten.Image, snap world.Snapshot) {
	grid := snap.Grid
	size := grid.TileSize()
	first := core.FloorDiv(snap.Camera, size)
	last := core.FloorDiv(snap.Camera+ViewW, size)

	for row := 0; row < grid.Rows(); row++ {
		for col := max(first, 0); col <= last && col < grid.Cols(row); col++ {
			var c color.Color
			switch grid.Tile(col, row) {
			case world.TileGround:
				c = GroundColor
			case world.TilePlatform:
				c = PlatformColor
			default:
				continue
			}
			x := float64(col)*size - snap.Camera
			y := float64(row) * size
			vector.FillRect(screen, float32(x), float32(y), float32(size), float32(size), c, false)
		}
	}
}

func fillBox(screen *ebiten.Image, camera float64, b core.Box, c color.Color) {
	vector.FillRect(screen, float32(b.X-camera), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

func (h *Host) drawHUD(screen *ebiten.Image, snap world.Snapshot) {
	state := h.game.State()
	line := fmt.Sprintf("SCORE %d  %d/%d", state.Score, snap.Defeated, len(snap.Enemies))
	if state.Paused {
		line += "  PAUSED"
	}
	if h.status != "" {
		line += "  " + h.status
	}
	vector.FillRect(screen, 0, 0, ViewW, 16, hudBackdrop, false)
	ebitenutil.DebugPrintAt(screen, line, 4, 0)
}

func (h *Host) drawButtons(screen *ebiten.Image) {
	layout := h.pointers.Layout()
	labels := map[touch.Button]string{
		touch.ButtonLeft:  "<",
		touch.ButtonRight: ">",
		touch.ButtonJump:  "^",
	}
	for b, label := range labels {
		c := layout.Circle(b)
		fill := color.Color(buttonFill)
		if h.pointers.Held(b) {
			fill = colornames.Lightgrey
		}
		vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(c.R), fill, true)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(c.R), 1, colornames.Black, true)
		ebitenutil.DebugPrintAt(screen, label, int(c.X)-3, int(c.Y)-8)
	}
}

// Layout fixes the logical view size; ebiten scales it to the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ViewW, ViewH
}

// Run opens the window and blocks until it is closed.
func Run(game Game, opts Options) error {
	h := NewHost(game, opts)

	ebiten.SetWindowSize(ViewW*h.opts.Scale, ViewH*h.opts.Scale)
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.opts.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
