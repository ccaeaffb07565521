// Package platformer adapts the tile-based platformer world to the arcade
// Game contract. It owns configuration, the current level, scoring, pause
// and restart; the simulation itself lives in the world package.
package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ID is the registry key of the platformer.
const ID = "platformer"

// Settings are the CLI-provided inputs a new Game starts from.
type Settings struct {
	ConfigPath string                  // Custom config file; empty uses the search order
	LevelRef   string                  // Level file path or built-in ID; empty uses the default
	Preset     config.DifficultyPreset // Optional difficulty preset
	Logger     *log.Logger             // Receives world events; nil discards them
}

var settings Settings

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settings.ConfigPath = path
}

// SetLevel sets the level file or built-in level ID to play.
func SetLevel(ref string) {
	settings.LevelRef = ref
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		settings.Preset = p
	}
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settings.Logger = l
}

// Game implements registry.Game for the platformer.
type Game struct {
	settings   Settings
	logger     *log.Logger
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	level      *levels.Level
	world      *world.World
	difficulty *config.DifficultyManager
	score      int
	paused     bool
	lastEvents []world.Event
}

// New creates a platformer using the package-level settings.
func New() *Game {
	return NewWithSettings(settings)
}

// NewWithSettings creates a platformer with explicit settings.
func NewWithSettings(s Settings) *Game {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{settings: s, logger: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads config and level and starts a fresh session.
// Load failures fall back to the built-in defaults so a session always starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(g.settings.ConfigPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPlatformerPreset(&cfg, g.settings.Preset)
	g.cfg = cfg

	lvl, err := levels.Resolve(g.settings.LevelRef)
	if err != nil {
		g.logger.Error("using default level", "level", g.settings.LevelRef, "error", err)
		lvl = mustDefaultLevel()
	}

	if err := g.start(lvl); err != nil {
		g.logger.Error("level rejected by world, using defaults", "level", lvl.ID, "error", err)
		g.cfg = config.DefaultPlatformerConfig()
		if err := g.start(mustDefaultLevel()); err != nil {
			panic("platformer: default world failed: " + err.Error())
		}
	}
}

// loadDefaultLevel loads the level every failed load falls back to.
var loadDefaultLevel = func() (*levels.Level, error) {
	return levels.LoadBuiltin(levels.DefaultID)
}

func mustDefaultLevel() *levels.Level {
	lvl, err := loadDefaultLevel()
	if err != nil {
		panic("platformer: built-in level is broken: " + err.Error())
	}
	return lvl
}

// start builds a new world for lvl with the current config and clears the
// session state.
func (g *Game) start(lvl *levels.Level) error {
	params := Params(g.cfg)
	if err := lvl.ValidateFor(params); err != nil {
		return err
	}
	w, err := world.New(lvl.Layout(), params)
	if err != nil {
		return err
	}
	g.level = lvl
	g.world = w
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.score = 0
	g.paused = false
	g.lastEvents = nil
	g.applyDifficulty()

	g.logger.Info("session started",
		"level", lvl.ID,
		"source", lvl.Source,
		"enemies", w.EnemyCount(),
	)
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		g.lastEvents = nil
		return core.StepResult{State: g.State()}
	}

	res := g.world.Tick(in.Intent())
	g.lastEvents = res.Events

	for _, ev := range res.Events {
		switch ev.Kind {
		case world.EventStomp:
			g.score += g.cfg.Enemy.StompPoints
			g.logger.Debug("enemy stomped", "tick", res.Tick, "enemy", ev.Enemy, "score", g.score)
		case world.EventHurt:
			g.logger.Debug("player hurt", "tick", res.Tick, "enemy", ev.Enemy)
		case world.EventFellOut:
			g.logger.Debug("player fell out of the world", "tick", res.Tick)
		}
	}
	g.applyDifficulty()

	return core.StepResult{State: g.State()}
}

// applyDifficulty sets the patrol speed the next tick will use.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	speed := g.difficulty.Speed(g.cfg.Enemy.PatrolSpeed, g.score, int(g.world.Ticks()))
	g.world.SetPatrolSpeed(speed)
}

// Restart starts the current level over with the current config.
func (g *Game) Restart() {
	if err := g.start(g.level); err != nil {
		// The level built a world before, so this only fails if the
		// config changed underneath it.
		g.logger.Error("restart failed", "error", err)
	}
}

// ReloadLevel reads a level file from disk and starts it. On error the
// current session keeps running.
func (g *Game) ReloadLevel(path string) error {
	lvl, err := levels.LoadFile(path)
	if err != nil {
		return err
	}
	if err := g.start(lvl); err != nil {
		return err
	}
	g.logger.Info("level reloaded", "path", path)
	return nil
}

// Level returns the level being played.
func (g *Game) Level() *levels.Level {
	return g.level
}

// Config returns the active configuration.
func (g *Game) Config() config.PlatformerConfig {
	return g.cfg
}

// Snapshot returns a render-ready copy of the world.
func (g *Game) Snapshot() world.Snapshot {
	return g.world.Snapshot()
}

// LastEvents returns the events of the most recent tick.
func (g *Game) LastEvents() []world.Event {
	return g.lastEvents
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.score,
		Tick:   g.world.Ticks(),
		Paused: g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
