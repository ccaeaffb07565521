package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// stepInput is what the host sent to the game on one tick.
type stepInput struct {
	intent  core.Intent
	pause   bool
	restart bool
}

type fakeGame struct {
	steps     []stepInput
	resets    int
	reloaded  []string
	reloadErr error
	state     core.GameState
}

func (g *fakeGame) ID() string                  { return "fake" }
func (g *fakeGame) Title() string               { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState       { return g.state }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, stepInput{
		intent:  in.Intent(),
		pause:   in.Has(core.ActionPause),
		restart: in.Has(core.ActionRestart),
	})
	g.state.Tick++
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) ReloadLevel(path string) error {
	g.reloaded = append(g.reloaded, path)
	return g.reloadErr
}

func newTestModel(game *fakeGame, hold int) Model {
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{HoldTicks: hold})
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelInitResetsGame(t *testing.T) {
	game := &fakeGame{}
	newTestModel(game, 5)
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
}

func TestModelHeldMovement(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 3)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 5; i++ {
		m, _ = send(m, TickMsg{})
	}

	want := []bool{true, true, true, false, false}
	for i, st := range game.steps {
		if st.intent.Right != want[i] {
			t.Errorf("tick %d: right = %v, want %v", i, st.intent.Right, want[i])
		}
	}
}

func TestModelOneShotActions(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 3)

	m, _ = send(m, runeKey('p'))
	m, _ = send(m, TickMsg{})
	m, _ = send(m, TickMsg{})

	if !game.steps[0].pause {
		t.Error("pause missing on first tick")
	}
	if game.steps[1].pause {
		t.Error("pause repeated on second tick")
	}
}

func TestModelRestartReleasesHolds(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 10)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(m, runeKey('r'))
	m, _ = send(m, TickMsg{})

	st := game.steps[0]
	if !st.restart || st.intent.Left {
		t.Errorf("step = %+v, want restart without left", st)
	}
}

func TestModelQuit(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 3)

	m, cmd := send(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 3)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelLevelReload(t *testing.T) {
	game := &fakeGame{}
	changes := make(chan string, 1)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}, Options{
		HoldTicks:    3,
		LevelChanges: changes,
	})

	m, cmd := send(m, LevelChangedMsg{Path: "/tmp/levels/next.yaml"})
	if len(game.reloaded) != 1 || game.reloaded[0] != "/tmp/levels/next.yaml" {
		t.Fatalf("reloaded = %v", game.reloaded)
	}
	if cmd == nil {
		t.Error("subscription not renewed")
	}
	if !strings.Contains(m.View(), "reloaded next.yaml") {
		t.Errorf("status missing from view:\n%s", m.View())
	}

	game.reloadErr = errors.New("bad tile")
	m, _ = send(m, LevelChangedMsg{Path: "/tmp/levels/next.yaml"})
	if !strings.Contains(m.View(), "reload failed: bad tile") {
		t.Errorf("failure status missing from view:\n%s", m.View())
	}
}

func TestModelStatusExpires(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, 3)
	m.setStatus("hello")
	for i := 0; i < statusTicks; i++ {
		m, _ = send(m, TickMsg{})
	}
	if strings.Contains(m.View(), "hello") {
		t.Error("status still shown after it expired")
	}
}

func TestWaitForLevelChangeClosed(t *testing.T) {
	if waitForLevelChange(nil) != nil {
		t.Error("nil channel should produce no command")
	}
	ch := make(chan string)
	close(ch)
	if msg := waitForLevelChange(ch)(); msg != nil {
		t.Errorf("closed channel produced %v", msg)
	}
}
