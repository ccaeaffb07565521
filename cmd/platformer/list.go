package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagLevelDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games and levels",
	Long: `Shows the games registered with the host, the levels embedded in the
binary and every level file in --dir.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelDir, "dir", "levels", "Directory with additional level files")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	fmt.Println("Games:")
	rows := make([][2]string, 0, len(games))
	for _, g := range games {
		rows = append(rows, [2]string{g.ID, g.Title})
	}
	printTable(rows)

	builtin, err := levels.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Built-in levels:")
	rows = rows[:0]
	for _, lvl := range builtin {
		rows = append(rows, [2]string{lvl.ID, lvl.Title()})
	}
	printTable(rows)

	extra, err := dirLevels(flagLevelDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(extra) > 0 {
		fmt.Println()
		fmt.Printf("Levels in %s:\n", flagLevelDir)
		rows = rows[:0]
		for _, lvl := range extra {
			rows = append(rows, [2]string{lvl.Ref(), lvl.Title()})
		}
		printTable(rows)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id-or-file>' to play a level.")
}

// dirLevels loads every level file in dir. A missing dir yields no levels.
func dirLevels(dir string) ([]*levels.Level, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, nil
	}
	return levels.LoadDir(dir)
}

// printTable prints an indented two-column ID/Title table.
func printTable(rows [][2]string) {
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, r := range rows {
		maxIDLen = max(maxIDLen, len(r[0]))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r[0], r[1])
	}
}
