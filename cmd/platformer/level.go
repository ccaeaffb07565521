package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/world"
)

var flagShowRows bool

var levelCmd = &cobra.Command{
	Use:   "level [file-or-id...]",
	Short: "Validate and describe levels",
	Long: `Loads each level, validates it against the active config and prints a summary. Without arguments
every built-in level is described. Exits non-zero if any level is invalid.

Examples:
  platformer level
  platformer level world-1 --rows
  platformer level ./levels/*.yaml`,
	RunE: runLevel,
}

func init() {
	levelCmd.Flags().BoolVar(&flagShowRows, "rows", false, "Print the tile rows")
}

func runLevel(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}
	params := platformer.Params(cfg)

	var all []*levels.Level
	if len(args) == 0 {
		builtin, err := levels.Builtin()
		if err != nil {
			return err
		}
		all = builtin
	}

	failed := 0
	for _, ref := range args {
		lvl, err := levels.Resolve(ref)
		if err != nil {
			fmt.Printf("%s: INVALID\n  %v\n\n", ref, err)
			failed++
			continue
		}
		all = append(all, lvl)
	}

	for _, lvl := range all {
		if err := lvl.ValidateFor(params); err != nil {
			fmt.Printf("%s: INVALID\n  %v\n\n", lvl.ID, err)
			failed++
			continue
		}
		grid, err := world.NewGrid(lvl.Rows, params.TileSize)
		if err != nil {
			return err
		}
		describeLevel(lvl, grid)
	}

	if failed > 0 {
		return fmt.Errorf("%d levels invalid", failed)
	}
	return nil
}

func describeLevel(lvl *levels.Level, grid *world.Grid) {
	fmt.Printf("%s: OK\n", lvl.ID)
	fmt.Printf("  name     %s\n", lvl.Title())
	fmt.Printf("  source   %s\n", lvl.Source)
	fmt.Printf("  size     %d rows, widest %d tiles (%.0fx%.0f units)\n",
		grid.Rows(), grid.MaxCols(), grid.PixelWidth(), grid.PixelHeight())
	fmt.Printf("  spawn    (%.0f, %.0f)\n", lvl.Spawn.X, lvl.Spawn.Y)
	fmt.Printf("  enemies  %d\n", len(lvl.Enemies))
	if flagShowRows {
		fmt.Println("  " + strings.Join(lvl.Rows, "\n  "))
	}
	fmt.Println()
}
