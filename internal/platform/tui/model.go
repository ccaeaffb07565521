package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// footerRows is the number of rows below the game screen.
const footerRows = 1

// statusTicks is how long a status message stays in the footer.
const statusTicks = 180

// LevelReloader is implemented by games that can swap their level at runtime.
type LevelReloader interface {
	ReloadLevel(path string) error
}

// Options configures the terminal host.
type Options struct {
	// HoldTicks is how many ticks a key press counts as held.
	HoldTicks int
	// LevelChanges delivers level files that changed on disk. Nil disables
	// hot reload.
	LevelChanges <-chan string
	// Logger receives host diagnostics. Nil discards them.
	Logger *log.Logger
	// Theme styles the screen. The zero value uses DefaultTheme.
	Theme Theme
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	theme      Theme
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	changes    <-chan string
	logger     *log.Logger
	status     string
	statusLeft int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	theme := opts.Theme
	if theme.Cells == nil {
		theme = DefaultTheme()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		theme:      theme,
		help:       help.New(),
		hold:       NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		changes:    opts.LevelChanges,
		logger:     logger,
	}
}

// gameRows returns the screen height left for the game.
func gameRows(h int) int {
	return max(h-footerRows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)

	return tea.Batch(
		tickCmd(m.config.TickRate),
		waitForLevelChange(m.changes),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelChangedMsg:
		return m.handleLevelChange(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement and jump are held; pause and restart fire once on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.hold.Press(a)
	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(a)
		if a == core.ActionRestart {
			m.hold.Reset()
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The world does not depend on screen size, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()
	m.hold.Advance()

	if m.statusLeft > 0 {
		m.statusLeft--
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// handleLevelChange reloads the level if the game supports it.
func (m Model) handleLevelChange(msg LevelChangedMsg) (tea.Model, tea.Cmd) {
	next := waitForLevelChange(m.changes)

	reloader, ok := m.game.(LevelReloader)
	if !ok {
		return m, next
	}
	if err := reloader.ReloadLevel(msg.Path); err != nil {
		m.logger.Warn("level reload failed", "path", msg.Path, "error", err)
		m.setStatus(fmt.Sprintf("reload failed: %v", err))
		return m, next
	}

	m.hold.Reset()
	m.gameState = m.game.State()
	m.setStatus("reloaded " + filepath.Base(msg.Path))
	return m, next
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.setStatus("saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.theme) + "\n" + m.footer()
}

// footer shows a pending status message, or the key help.
func (m Model) footer() string {
	if m.statusLeft > 0 && m.status != "" {
		return m.theme.Status.Render(m.status)
	}
	return m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
