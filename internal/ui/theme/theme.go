package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/core/mode"
)

// Theme holds all colors for the application.
type Theme struct {
	Name string

	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	Accent    lipgloss.Color
	Secondary lipgloss.Color
	Info      lipgloss.Color
	Highlight lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// ModeColor returns the tab color for a mode.
func (t Theme) ModeColor(m mode.Mode) lipgloss.Color {
	switch m {
	case mode.Random:
		return t.Accent
	case mode.Category:
		return t.Secondary
	case mode.Search:
		return t.Info
	default:
		return t.Text
	}
}
