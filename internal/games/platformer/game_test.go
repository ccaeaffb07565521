package platformer

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// dropLevel spawns the player directly above an enemy walking right.
const dropLevel = `
id: drop
rows:
  - "........"
  - "........"
  - "........"
  - "########"
spawn: {x: 20, y: 0}
enemies:
  - {x: 20, y: 33, dir: 1}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestGame isolates the game from any user or local config files.
func newTestGame(t *testing.T, levelDoc string, preset config.DifficultyPreset) *Game {
	t.Helper()
	dir := t.TempDir()
	s := Settings{
		ConfigPath: writeFile(t, dir, "platformer.yaml", "{}\n"),
		Preset:     preset,
	}
	if levelDoc != "" {
		s.LevelRef = writeFile(t, dir, "level.yaml", levelDoc)
	}
	g := NewWithSettings(s)
	g.Reset(core.DefaultConfig())
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestParamsFromDefaultConfig(t *testing.T) {
	if got := Params(config.DefaultPlatformerConfig()); got != world.DefaultParams() {
		t.Errorf("Params(default) = %+v\nwant %+v", got, world.DefaultParams())
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("registry.Create: %v", err)
	}
	if g.ID() != ID {
		t.Errorf("ID = %q", g.ID())
	}
}

func TestResetDefaultLevel(t *testing.T) {
	g := newTestGame(t, "", "")

	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q, want %q", g.Level().ID, levels.DefaultID)
	}
	snap := g.Snapshot()
	if len(snap.Enemies) != 9 {
		t.Errorf("enemies = %d, want 9", len(snap.Enemies))
	}
	if snap.Player.Box.X != 50 || snap.Player.Box.Y != 50 {
		t.Errorf("player at (%v,%v), want spawn", snap.Player.Box.X, snap.Player.Box.Y)
	}
	if g.State() != (core.GameState{}) {
		t.Errorf("state = %+v, want zero", g.State())
	}
	if g.world.PatrolSpeed() != 0.4 {
		t.Errorf("patrol speed = %v, want 0.4", g.world.PatrolSpeed())
	}
}

func TestResetUnknownLevelFallsBack(t *testing.T) {
	g := NewWithSettings(Settings{
		ConfigPath: writeFile(t, t.TempDir(), "c.yaml", "{}\n"),
		LevelRef:   "no-such-level",
	})
	g.Reset(core.DefaultConfig())
	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q, want fallback %q", g.Level().ID, levels.DefaultID)
	}
}

// tallPlayerConfig makes the player reach the ground row of dropLevel
// from its spawn point.
const tallPlayerConfig = "player:\n  height: 50\n"

func TestResetChecksSpawnWithConfiguredPlayer(t *testing.T) {
	dir := t.TempDir()
	g := NewWithSettings(Settings{
		ConfigPath: writeFile(t, dir, "c.yaml", tallPlayerConfig),
		LevelRef:   writeFile(t, dir, "drop.yaml", dropLevel),
	})
	g.Reset(core.DefaultConfig())

	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q, want fallback %q", g.Level().ID, levels.DefaultID)
	}
	if g.Config() != config.DefaultPlatformerConfig() {
		t.Errorf("config = %+v, want defaults after fallback", g.Config())
	}
}

func TestReloadRejectsSpawnInsideTerrain(t *testing.T) {
	dir := t.TempDir()
	g := NewWithSettings(Settings{ConfigPath: writeFile(t, dir, "c.yaml", tallPlayerConfig)})
	g.Reset(core.DefaultConfig())

	err := g.ReloadLevel(writeFile(t, dir, "drop.yaml", dropLevel))
	if !errors.Is(err, levels.ErrInvalid) {
		t.Fatalf("ReloadLevel error = %v, want ErrInvalid", err)
	}
	if g.Level().ID != levels.DefaultID {
		t.Errorf("level = %q, current session should keep running", g.Level().ID)
	}
}

func TestResetPanicsWhenDefaultLevelMissing(t *testing.T) {
	orig := loadDefaultLevel
	loadDefaultLevel = func() (*levels.Level, error) {
		return nil, levels.ErrNotFound
	}
	defer func() { loadDefaultLevel = orig }()

	dir := t.TempDir()
	g := NewWithSettings(Settings{
		ConfigPath: writeFile(t, dir, "c.yaml", tallPlayerConfig),
		LevelRef:   writeFile(t, dir, "drop.yaml", dropLevel),
	})

	defer func() {
		msg, ok := recover().(string)
		if !ok || !strings.Contains(msg, "built-in level is broken") {
			t.Errorf("panic = %v, want the built-in level message", msg)
		}
	}()
	g.Reset(core.DefaultConfig())
}

func TestStompScores(t *testing.T) {
	g := newTestGame(t, dropLevel, "")

	stomps := 0
	for i := 0; i < 30; i++ {
		step(g)
		for _, ev := range g.LastEvents() {
			if ev.Kind == world.EventStomp {
				stomps++
			}
			if ev.Kind == world.EventHurt {
				t.Fatalf("tick %d: player hurt while falling onto enemy", i)
			}
		}
	}

	if stomps != 1 {
		t.Fatalf("stomps = %d, want 1", stomps)
	}
	if g.State().Score != 100 {
		t.Errorf("score = %d, want 100", g.State().Score)
	}
	if g.Snapshot().Defeated != 1 {
		t.Errorf("defeated = %d, want 1", g.Snapshot().Defeated)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, "", "")
	step(g)
	step(g)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		step(g, core.ActionRight)
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.Player != before.Player {
		t.Error("world advanced while paused")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("expected resumed")
	}
	if g.State().Tick != before.Tick+1 {
		t.Errorf("tick = %d, want %d", g.State().Tick, before.Tick+1)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, dropLevel, "")
	for i := 0; i < 30; i++ {
		step(g)
	}
	if g.State().Score == 0 {
		t.Fatal("setup: expected a stomp before restart")
	}

	res := step(g, core.ActionRestart)
	if res.State.Score != 0 || res.State.Tick != 0 {
		t.Errorf("state after restart = %+v", res.State)
	}
	snap := g.Snapshot()
	if snap.Defeated != 0 || snap.ActiveEnemies() != 1 {
		t.Errorf("enemies not restored: %+v", snap.Enemies)
	}
	if g.Level().ID != "drop" {
		t.Errorf("level = %q, want drop", g.Level().ID)
	}
}

func TestDifficultyPresetScalesPatrol(t *testing.T) {
	g := newTestGame(t, "", config.DifficultyHard)
	want := 0.4 * (1 + 0.7*1.5)
	if got := g.world.PatrolSpeed(); math.Abs(got-want) > 1e-9 {
		t.Errorf("patrol speed = %v, want %v", got, want)
	}

	fixed := newTestGame(t, "", config.DifficultyFixed)
	if got := fixed.world.PatrolSpeed(); got != 0.4 {
		t.Errorf("fixed patrol speed = %v, want 0.4", got)
	}
}

func TestReloadLevel(t *testing.T) {
	g := newTestGame(t, "", "")
	step(g, core.ActionRight)

	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", dropLevel)
	if err := g.ReloadLevel(good); err != nil {
		t.Fatalf("ReloadLevel: %v", err)
	}
	if g.Level().ID != "drop" || g.State().Tick != 0 {
		t.Errorf("after reload: level %q tick %d", g.Level().ID, g.State().Tick)
	}

	bad := writeFile(t, dir, "bad.yaml", "id: broken\nrows: ['..?']\n")
	if err := g.ReloadLevel(bad); err == nil {
		t.Fatal("expected error for invalid level")
	}
	if g.Level().ID != "drop" {
		t.Errorf("invalid reload replaced the level with %q", g.Level().ID)
	}
}

func TestSetDifficultyPresetIgnoresUnknown(t *testing.T) {
	saved := settings
	defer func() { settings = saved }()

	SetDifficultyPreset("hard")
	SetDifficultyPreset("impossible")
	if settings.Preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", settings.Preset)
	}
}
