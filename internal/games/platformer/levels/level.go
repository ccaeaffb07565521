// Package levels loads platformer levels from YAML.
//
// A level file carries the tile rows, the player spawn and the enemy roster.
// Built-in levels are embedded in the binary; additional levels are read from
// disk and may be hot-reloaded through a Watcher.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("levels: invalid level")

// Point is a YAML position in world units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Enemy is one roster entry.
type Enemy struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Dir int     `yaml:"dir"` // -1 left, +1 right
}

// Level is the on-disk level document.
type Level struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Spawn   Point    `yaml:"spawn"`
	Rows    []string `yaml:"rows"`
	Enemies []Enemy  `yaml:"enemies"`

	// Source is the file the level was read from, or "builtin:<file>".
	Source string `yaml:"-"`
}

const builtinPrefix = "builtin:"

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks the level against the reference tuning.
func (l *Level) Validate() error {
	return l.ValidateFor(world.DefaultParams())
}

// ValidateFor checks that the level can build a world with params: the rows
// use only the tile legend, the player box fits at the spawn point without
// touching solid terrain and every enemy walks left or right.
func (l *Level) ValidateFor(p world.Params) error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	grid, err := world.NewGrid(l.Rows, p.TileSize)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, l.ID, err)
	}
	if grid.RectCollides(l.Spawn.X, l.Spawn.Y, p.Player.Width, p.Player.Height) {
		return fmt.Errorf("%w: %s: spawn (%.0f,%.0f) overlaps solid terrain",
			ErrInvalid, l.ID, l.Spawn.X, l.Spawn.Y)
	}
	for i, e := range l.Enemies {
		if e.Dir != -1 && e.Dir != 1 {
			return fmt.Errorf("%w: %s: enemy %d: dir must be -1 or 1, got %d",
				ErrInvalid, l.ID, i, e.Dir)
		}
	}
	return nil
}

// Layout converts the level into world input.
func (l *Level) Layout() world.Layout {
	rows := make([]string, len(l.Rows))
	copy(rows, l.Rows)

	enemies := make([]world.EnemySpawn, len(l.Enemies))
	for i, e := range l.Enemies {
		enemies[i] = world.EnemySpawn{X: e.X, Y: e.Y, Dir: e.Dir}
	}

	return world.Layout{
		Rows:    rows,
		Spawn:   world.Point{X: l.Spawn.X, Y: l.Spawn.Y},
		Enemies: enemies,
	}
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// IsBuiltin reports whether the level was embedded in the binary.
func (l *Level) IsBuiltin() bool {
	return strings.HasPrefix(l.Source, builtinPrefix)
}

// Ref returns the argument Resolve needs to load this level again.
func (l *Level) Ref() string {
	if l.Source == "" || l.IsBuiltin() {
		return l.ID
	}
	return l.Source
}
