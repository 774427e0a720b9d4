package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/ui/theme"
)

const helpBoxWidth = 60

type helpSection struct {
	Title    string
	Bindings []helpBinding
}

type helpBinding struct {
	Key  string
	Desc string
}

var helpSections = []helpSection{
	{
		Title: "General",
		Bindings: []helpBinding{
			{"1 / 2 / 3", "Random / Category / Search mode"},
			{"n", "Another joke"},
			{"y", "Copy joke to clipboard"},
			{"?", "Toggle this help"},
			{"q / Ctrl+C", "Quit"},
		},
	},
	{
		Title: "Category",
		Bindings: []helpBinding{
			{"j / k", "Move cursor down / up"},
			{"Enter", "Select category"},
			{"/", "Filter categories"},
			{"r", "Reload categories"},
			{"Tab", "Switch between list and joke"},
		},
	},
	{
		Title: "Search",
		Bindings: []helpBinding{
			{"/", "Focus search input"},
			{"Enter", "Submit search"},
			{"Esc", "Leave search input"},
		},
	},
}

// Help is a help overlay showing keybindings.
type Help struct {
	Visible  bool
	viewport viewport.Model
	styles   theme.Styles
	height   int
	ready    bool
}

// NewHelp creates a new help overlay.
func NewHelp(s theme.Styles) Help {
	return Help{styles: s}
}

// SetSize sets the terminal dimensions.
func (m *Help) SetSize(_, h int) {
	m.height = h
	m.ready = false
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
	if m.Visible {
		m.buildViewport()
	}
}

func (m *Help) buildViewport() {
	t := m.styles.Theme()
	contentWidth := helpBoxWidth - 6

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Width(14).
		Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Info).Bold(true).MarginTop(1)
	sepStyle := lipgloss.NewStyle().Foreground(t.Muted)

	var lines []string
	for _, section := range helpSections {
		lines = append(lines, sectionStyle.Render(section.Title))
		lines = append(lines, sepStyle.Render(strings.Repeat("─", contentWidth)))
		for _, b := range section.Bindings {
			lines = append(lines, keyStyle.Render(b.Key)+sepStyle.Render(" │ ")+descStyle.Render(b.Desc))
		}
	}

	m.viewport = viewport.New(contentWidth, max(10, m.height-8))
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.ready = true
}

// Update scrolls the overlay and closes it on esc or ?.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, nil
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}
	if !m.ready {
		m.buildViewport()
	}

	t := m.styles.Theme()
	title := lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		Width(helpBoxWidth - 6).
		Align(lipgloss.Center).
		Render("Keyboard Shortcuts")

	return lipgloss.NewStyle().
		Width(helpBoxWidth).
		Background(t.Surface).
		Foreground(t.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocused).
		Padding(1, 2).
		Render(title + "\n\n" + m.viewport.View())
}
