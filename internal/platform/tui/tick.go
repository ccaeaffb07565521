// Package tui provides the Bubble Tea host for the platformer.
// It handles the terminal UI loop, input mapping, level hot reload and the
// level picker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LevelChangedMsg reports a level file that changed on disk.
type LevelChangedMsg struct {
	Path string
}

// waitForLevelChange blocks until the next path arrives on ch.
// It returns nil once ch is closed, which ends the subscription.
func waitForLevelChange(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-ch
		if !ok {
			return nil
		}
		return LevelChangedMsg{Path: path}
	}
}
