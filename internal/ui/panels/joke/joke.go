// Package joke renders the joke card shared by all three modes.
package joke

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/ui/theme"
)

// Card is the data the panel renders.
type Card struct {
	Title   string
	Joke    string
	Loading bool
	Error   string
	// Hint is shown when there is nothing else to show.
	Hint string
}

// Model is the joke panel.
type Model struct {
	card    Card
	width   int
	height  int
	focused bool

	spinner spinner.Model
	styles  theme.Styles
}

// New creates a joke panel.
func New(s theme.Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Accent)
	return Model{spinner: sp, styles: s}
}

// SetCard replaces the rendered content.
func (m *Model) SetCard(c Card) {
	m.card = c
}

// Card returns the rendered content.
func (m Model) Card() Card {
	return m.card
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetFocused sets whether this panel has focus.
func (m *Model) SetFocused(f bool) {
	m.focused = f
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := max(1, m.width-4)
	innerH := max(1, m.height-2)

	lines := []string{m.styles.Title.Render(m.card.Title), ""}

	if m.card.Loading {
		lines = append(lines, m.spinner.View()+" "+m.styles.Muted.Render("Loading..."))
	}
	if m.card.Error != "" {
		lines = append(lines, m.styles.Error.Width(innerW).Render(m.card.Error))
	}
	if m.card.Joke != "" {
		style := m.styles.Joke
		if m.card.Loading {
			style = m.styles.Muted
		}
		if len(lines) > 2 {
			lines = append(lines, "")
		}
		lines = append(lines, style.Width(innerW).Render(m.card.Joke))
	}
	if len(lines) == 2 && m.card.Hint != "" {
		lines = append(lines, m.styles.Hint.Render(m.card.Hint))
	}

	return border.
		Width(innerW+2).
		Height(innerH).
		Padding(0, 1).
		Render(fitHeight(strings.Join(lines, "\n"), innerH))
}

func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
