// Package world implements the platformer simulation: the tile grid, single-axis
// move-and-resolve physics, the player and enemy controllers, the scrolling camera
// and the fixed-order tick that ties them together.
//
// The package is pure. It performs no I/O, never logs and never blocks; hosts
// feed it one core.Intent per tick and read back a Snapshot.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// TileKind is the terrain stored in one grid cell.
type TileKind uint8

const (
	TileEmpty    TileKind = iota // Air
	TileGround                   // Solid ground
	TilePlatform                 // Solid floating platform
	TileBoundary                 // Returned for columns left or right of a row
)

// Level symbols.
const (
	SymbolEmpty    = '.'
	SymbolGround   = '#'
	SymbolPlatform = '2'
)

// DefaultTileSize is the edge length of one tile in world units.
const DefaultTileSize = 16.0

var (
	// ErrEmptyGrid is returned when a level has no rows.
	ErrEmptyGrid = errors.New("world: grid has no rows")
	// ErrUnknownTile is returned for a symbol outside the level legend.
	ErrUnknownTile = errors.New("world: unknown tile symbol")
)

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileGround:
		return "ground"
	case TilePlatform:
		return "platform"
	case TileBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// IsSolid reports whether actors collide with the tile kind.
func IsSolid(k TileKind) bool {
	return k == TileGround || k == TilePlatform || k == TileBoundary
}

// TileFromSymbol maps a level symbol to its tile kind.
func TileFromSymbol(r rune) (TileKind, bool) {
	switch r {
	case SymbolEmpty:
		return TileEmpty, true
	case SymbolGround:
		return TileGround, true
	case SymbolPlatform:
		return TilePlatform, true
	default:
		return TileEmpty, false
	}
}

// Grid is the static tile map. Rows may have different lengths.
// A Grid is never mutated after NewGrid returns, so it is safe to share
// between the tick and any number of renderers.
type Grid struct {
	rows     [][]TileKind
	tileSize float64
	maxCols  int
}

// NewGrid parses level rows into a grid. Each rune of a row is one tile.
func NewGrid(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("world: tile size must be positive, got %v", tileSize)
	}

	g := &Grid{
		rows:     make([][]TileKind, len(rows)),
		tileSize: tileSize,
	}
	for y, row := range rows {
		kinds := make([]TileKind, 0, len(row))
		for x, r := range []rune(row) {
			k, ok := TileFromSymbol(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrUnknownTile, r, y, x)
			}
			kinds = append(kinds, k)
		}
		g.rows[y] = kinds
		g.maxCols = core.Max(g.maxCols, len(kinds))
	}
	return g, nil
}

// TileSize returns the tile edge length in world units.
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Cols returns the number of tiles in the given row, or 0 outside the grid.
func (g *Grid) Cols(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// MaxCols returns the length of the longest row.
func (g *Grid) MaxCols() int {
	return g.maxCols
}

// PixelHeight returns the grid height in world units.
func (g *Grid) PixelHeight() float64 {
	return float64(len(g.rows)) * g.tileSize
}

// PixelWidth returns the width of the longest row in world units.
func (g *Grid) PixelWidth() float64 {
	return float64(g.maxCols) * g.tileSize
}

// Tile returns the kind at tile coordinates. Rows above or below the grid
// are empty; columns outside an existing row are boundary.
func (g *Grid) Tile(col, row int) TileKind {
	if row < 0 || row >= len(g.rows) {
		return TileEmpty
	}
	if col < 0 || col >= len(g.rows[row]) {
		return TileBoundary
	}
	return g.rows[row][col]
}

// TileAt returns the kind at world coordinates.
func (g *Grid) TileAt(worldX, worldY float64) TileKind {
	return g.Tile(core.FloorDiv(worldX, g.tileSize), core.FloorDiv(worldY, g.tileSize))
}

// RectCollides samples the four corners of the box against the grid and
// reports whether any of them lands on a solid tile. Edges between corners are
// not checked, so thin geometry can be skipped at high speed.
func (g *Grid) RectCollides(x, y, w, h float64) bool {
	for _, c := range core.NewBox(x, y, w, h).Corners() {
		if IsSolid(g.TileAt(c[0], c[1])) {
			return true
		}
	}
	return false
}
