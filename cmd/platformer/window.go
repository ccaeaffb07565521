package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/window"
)

var (
	flagScale       int
	flagWindowWatch bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window",
	Long: `Start the platformer in a 256x240 window scaled up by --scale.

Controls:
  Left/A, Right/D   - Run
  Space/Up/W        - Jump
  On-screen buttons - Left and right bottom-left, jump bottom-right (touch or mouse)
  Gamepad           - Left stick or D-pad to run, bottom face button to jump
  P                 - Pause
  R                 - Restart the level
  Esc/Q             - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 3, "Window pixels per game pixel")
	windowCmd.Flags().BoolVar(&flagWindowWatch, "watch", false, "Reload the level file when it changes")
}

func runWindow(cmd *cobra.Command, args []string) {
	if _, err := levels.Resolve(flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := window.Options{
		Scale:    flagScale,
		TickRate: flagFPS,
		Title:    "Platformer",
		Logger:   logger,
	}
	if flagWindowWatch {
		ch, stop, err := watchLevel(flagLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
		opts.LevelChanges = ch
	}

	if err := window.Run(platformer.New(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
