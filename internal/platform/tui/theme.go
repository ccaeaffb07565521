package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Theme contains the visual styles of the terminal host.
type Theme struct {
	// Cells maps screen cell colors to styles.
	Cells map[core.Color]lipgloss.Style

	// Status styles the footer line.
	Status lipgloss.Style
}

// DefaultTheme returns the default visual theme. Terrain and actors use the
// classic palette; everything else uses the terminal's ANSI colors.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")), // Player
			core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("#b5651d")), // Platform
			core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("#7c3f00")), // Ground
			core.ColorDarkRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("#5a0000")), // Enemy
		},

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color
// support.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Cells = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	theme.Status = lipgloss.NewStyle().Faint(true)
	return theme
}

// ThemeByName returns a theme by its CLI name.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono":
		return MonochromeTheme(), true
	default:
		return Theme{}, false
	}
}

// Style returns the style for a cell color, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.Cells[c]; ok {
		return s
	}
	return t.Cells[core.ColorDefault]
}
