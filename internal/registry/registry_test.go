package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	id    string
	title string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.state.Tick++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create returned %q, want stub-b", g.ID())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}

	var titles []string
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			titles = append(titles, info.Title)
		}
	}
	if len(titles) != 2 || titles[0] != "Stub A" || titles[1] != "Stub B" {
		t.Errorf("List titles = %v, want [Stub A Stub B] in id order", titles)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same id should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub-fresh", func() Game { return &stubGame{id: "stub-fresh"} })

	a, _ := Create("stub-fresh")
	a.Step(core.NewInputFrame())
	b, _ := Create("stub-fresh")

	if b.State().Tick != 0 {
		t.Errorf("new instance tick = %d, want 0", b.State().Tick)
	}
}
