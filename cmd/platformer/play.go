package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagWatch bool
	flagTheme string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the platformer in the terminal.

Controls:
  Left/A, Right/D   - Run
  Space/Up/W        - Jump
  P/Esc             - Pause
  R                 - Restart the level
  Ctrl+S            - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C          - Quit

Terminals do not report key releases, so a key counts as held for
input.hold_ticks ticks after each press or auto-repeat.

Difficulty options:
  easy   - Enemies start at base speed and speed up with score
  normal - Enemies start 45% faster and speed up with score
  hard   - Enemies start about twice as fast and speed up with score
  fixed  - Enemies always patrol at enemy.patrol_speed

Examples:
  platformer play
  platformer play --level world-1 --difficulty hard
  platformer play --level ./levels/castle.yaml --watch
  platformer play --config ./my-platformer.yaml --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file when it changes")
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Fail before taking over the terminal
	if _, err := levels.Resolve(flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var changes <-chan string
	if flagWatch {
		ch, stop, err := watchLevel(flagLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
		changes = ch
	}

	if err := playTerminal(terminalConfig(), changes); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// playTerminal runs a new platformer session in the terminal host.
func playTerminal(cfg core.RuntimeConfig, changes <-chan string) error {
	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		return fmt.Errorf("unknown theme %q", flagTheme)
	}

	// Hold window comes from the same config the game will load
	gameCfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		gameCfg = config.DefaultPlatformerConfig()
	}

	game := platformer.New()
	return tui.Run(game, cfg, tui.Options{
		HoldTicks:    gameCfg.Input.HoldTicks,
		LevelChanges: changes,
		Logger:       logger,
		Theme:        theme,
	})
}
