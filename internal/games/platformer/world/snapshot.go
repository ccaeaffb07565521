package world

import "github.com/vovakirdan/tui-platformer/internal/core"

// PlayerView is the renderer's read-only copy of the player.
type PlayerView struct {
	Box      core.Box
	VelX     float64
	VelY     float64
	Grounded bool
}

// EnemyView is the renderer's read-only copy of one enemy. Defeated enemies
// stay in the roster at their off-world position.
type EnemyView struct {
	Box   core.Box
	Dir   int
	State EnemyState
}

// Snapshot is the complete state a renderer needs for one frame. It shares
// only the immutable Grid with the world; everything else is copied, so a
// Snapshot stays valid while the world keeps ticking.
type Snapshot struct {
	Tick     uint64
	Grid     *Grid
	Camera   float64
	Player   PlayerView
	Enemies  []EnemyView
	Defeated int
}

// Snapshot copies the current state at the tick boundary.
func (w *World) Snapshot() Snapshot {
	enemies := make([]EnemyView, len(w.enemies))
	for i := range w.enemies {
		e := &w.enemies[i]
		enemies[i] = EnemyView{
			Box:   e.Box(),
			Dir:   e.Dir,
			State: e.State,
		}
	}

	return Snapshot{
		Tick:   w.tick,
		Grid:   w.grid,
		Camera: w.camera.X,
		Player: PlayerView{
			Box:      w.player.Box(),
			VelX:     w.player.VelX,
			VelY:     w.player.VelY,
			Grounded: w.player.Grounded,
		},
		Enemies:  enemies,
		Defeated: w.defeated,
	}
}

// ActiveEnemies returns how many enemies in the snapshot are still in play.
func (s Snapshot) ActiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if e.State == EnemyActive {
			n++
		}
	}
	return n
}
