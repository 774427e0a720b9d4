package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/core/mode"
)

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style

	Joke     lipgloss.Style
	Query    lipgloss.Style
	Category lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	StatusText  lipgloss.Style
	Selected    lipgloss.Style
	Cursor      lipgloss.Style

	theme Theme
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:    lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Subtext),
		Normal:   lipgloss.NewStyle().Foreground(t.Text),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted),
		Bold:     lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Key:      lipgloss.NewStyle().Foreground(t.Accent),
		Hint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),

		Joke:     lipgloss.NewStyle().Foreground(t.Text),
		Query:    lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		Category: lipgloss.NewStyle().Foreground(t.Secondary),

		TabActive: lipgloss.NewStyle().
			Foreground(t.Base).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Padding(0, 2),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
		Cursor: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Text),

		theme: t,
	}
}

// Theme returns the theme the styles were built from.
func (s Styles) Theme() Theme {
	return s.theme
}

// ModeTab returns the active tab style for a mode.
func (s Styles) ModeTab(m mode.Mode) lipgloss.Style {
	return s.TabActive.Background(s.theme.ModeColor(m))
}
