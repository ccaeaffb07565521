// platformer is a side-scrolling tile platformer for the terminal and the desktop.
//
// Usage:
//
//	platformer play             - Play in the terminal
//	platformer window           - Play in a window (keyboard, gamepad, touch)
//	platformer sim              - Run the simulation headless with scripted input
//	platformer level [ref...]   - Validate and describe levels
//	platformer list             - List registered games and levels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom platformer config YAML
//	--level <ref>         - Level file or built-in level ID
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagLevel      string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.New(io.Discard)

// logFile is closed when the process exits.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - a side-scrolling tile platformer",
	Long: `Platformer is a tile-based side-scroller: run, jump across pits and
stomp patrolling enemies. It runs in the terminal or in a window.

Available commands:
  play     - Play in the terminal
  window   - Play in a window
  sim      - Headless simulation with scripted input
  level    - Validate and describe levels
  list     - List registered games and levels

Examples:
  platformer play
  platformer play --level ./levels/castle.yaml --watch
  platformer window --scale 4
  platformer sim --ticks 600 --right --jump-every 45
  platformer level ./levels/castle.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file path or built-in level ID")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelCmd)
}

// setup validates global flags, builds the logger and hands the settings to
// the platformer package.
func setup(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	// Full-screen hosts own the terminal, so they only log to a file.
	var w io.Writer = os.Stderr
	if ownsTerminal(cmd) {
		w = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           level,
	})

	platformer.SetConfigPath(flagConfig)
	platformer.SetLevel(flagLevel)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLogger(logger)
	return nil
}

// ownsTerminal reports whether cmd draws to the alternate screen.
func ownsTerminal(cmd *cobra.Command) bool {
	return cmd == playCmd
}
