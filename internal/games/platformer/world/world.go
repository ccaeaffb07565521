package world

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// EnemySpawn places one enemy at world init.
type EnemySpawn struct {
	X, Y float64
	Dir  int
}

// Layout is everything a level contributes to a world.
type Layout struct {
	Rows    []string
	Spawn   Point
	Enemies []EnemySpawn
}

// Params collects every tuning constant of a world.
type Params struct {
	TileSize float64
	Physics  Physics
	Player   PlayerParams
	Enemy    EnemyParams
	Lead     float64

	// KillPlaneMargin respawns a player whose y passes the bottom of the grid
	// by more than this many units. Zero or negative disables it.
	KillPlaneMargin float64

	// ResetCameraOnRespawn returns the camera to its spawn offset whenever
	// the player is sent back to spawn.
	ResetCameraOnRespawn bool
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		TileSize:             DefaultTileSize,
		Physics:              DefaultPhysics(),
		Player:               DefaultPlayerParams(),
		Enemy:                DefaultEnemyParams(),
		Lead:                 DefaultLeadDistance,
		KillPlaneMargin:      64,
		ResetCameraOnRespawn: true,
	}
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventStomp   EventKind = iota // Player defeated an enemy
	EventHurt                     // Player touched an enemy and respawned
	EventFellOut                  // Player dropped past the kill plane and respawned
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStomp:
		return "stomp"
	case EventHurt:
		return "hurt"
	case EventFellOut:
		return "fell_out"
	default:
		return "unknown"
	}
}

// Event records one occurrence during a tick. Enemy is the roster index,
// or -1 when no enemy was involved.
type Event struct {
	Kind  EventKind
	Enemy int
}

// TickResult reports what happened during one call to Tick.
type TickResult struct {
	Tick   uint64
	Events []Event
}

// World owns the whole simulation state. It is not safe for concurrent use;
// renderers on other goroutines must work from a Snapshot.
type World struct {
	grid        *Grid
	params      Params
	spawn       Point
	player      Player
	enemies     []Enemy
	camera      Camera
	patrolSpeed float64
	tick        uint64
	defeated    int
}

// New builds a world from a layout. The grid and enemy roster are fixed
// for the life of the world.
func New(layout Layout, params Params) (*World, error) {
	grid, err := NewGrid(layout.Rows, params.TileSize)
	if err != nil {
		return nil, err
	}
	if params.Enemy.StompBounceDivisor == 0 {
		return nil, fmt.Errorf("world: stomp bounce divisor must be non-zero")
	}

	w := &World{
		grid:        grid,
		params:      params,
		spawn:       layout.Spawn,
		player:      NewPlayer(params.Player, layout.Spawn),
		enemies:     make([]Enemy, len(layout.Enemies)),
		camera:      NewCamera(params.Lead),
		patrolSpeed: params.Enemy.PatrolSpeed,
	}
	for i, s := range layout.Enemies {
		w.enemies[i] = NewEnemy(params.Enemy, s)
	}
	w.camera.Reset(layout.Spawn.X)
	return w, nil
}

// Tick advances the simulation by one fixed step:
// player, camera, every enemy's patrol, then every enemy's interaction.
// Patrol and interaction are separate passes over the roster.
func (w *World) Tick(in core.Intent) TickResult {
	w.player.Step(w.grid, w.params.Physics, in)
	w.camera.Update(w.player.X)

	for i := range w.enemies {
		w.enemies[i].Patrol(w.grid, w.patrolSpeed)
	}

	var events []Event
	for i := range w.enemies {
		switch ResolveInteraction(&w.player, &w.enemies[i], w.params.Enemy, w.spawn) {
		case InteractionStomp:
			w.defeated++
			events = append(events, Event{Kind: EventStomp, Enemy: i})
		case InteractionHurt:
			w.afterRespawn()
			events = append(events, Event{Kind: EventHurt, Enemy: i})
		}
	}

	if w.belowKillPlane() {
		w.player.Respawn(w.spawn)
		w.afterRespawn()
		events = append(events, Event{Kind: EventFellOut, Enemy: -1})
	}

	w.tick++
	return TickResult{Tick: w.tick, Events: events}
}

func (w *World) afterRespawn() {
	if w.params.ResetCameraOnRespawn {
		w.camera.Reset(w.spawn.X)
	}
}

func (w *World) belowKillPlane() bool {
	if w.params.KillPlaneMargin <= 0 {
		return false
	}
	return w.player.Y > w.grid.PixelHeight()+w.params.KillPlaneMargin
}

// SetPatrolSpeed changes enemy patrol speed for subsequent ticks.
func (w *World) SetPatrolSpeed(speed float64) {
	w.patrolSpeed = speed
}

// PatrolSpeed returns the current enemy patrol speed.
func (w *World) PatrolSpeed() float64 {
	return w.patrolSpeed
}

// Grid returns the static tile grid.
func (w *World) Grid() *Grid {
	return w.grid
}

// Player returns a pointer to the live player. Hosts must not hold it across ticks.
func (w *World) Player() *Player {
	return &w.player
}

// Enemy returns a pointer to the live enemy at index i.
func (w *World) Enemy(i int) *Enemy {
	return &w.enemies[i]
}

// EnemyCount returns the size of the roster, defeated enemies included.
func (w *World) EnemyCount() int {
	return len(w.enemies)
}

// Defeated returns how many enemies have been stomped.
func (w *World) Defeated() int {
	return w.defeated
}

// Camera returns the current scroll offset.
func (w *World) Camera() float64 {
	return w.camera.X
}

// Spawn returns the player spawn point.
func (w *World) Spawn() Point {
	return w.spawn
}

// Ticks returns the number of ticks simulated so far.
func (w *World) Ticks() uint64 {
	return w.tick
}

// Params returns the tuning the world was built with.
func (w *World) Params() Params {
	return w.params
}
