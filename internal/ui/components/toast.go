package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/ui/theme"
)

const defaultToastDuration = 3 * time.Second

// toastDismissMsg dismisses the toast shown with the same id.
type toastDismissMsg struct {
	id int
}

// Toast is an auto-dismiss notification.
type Toast struct {
	Visible  bool
	text     string
	isError  bool
	duration time.Duration
	id       int
	styles   theme.Styles
}

// NewToast creates a new toast component.
func NewToast(s theme.Styles) Toast {
	return Toast{
		styles:   s,
		duration: defaultToastDuration,
	}
}

// Show displays a toast message and returns a Cmd for auto-dismiss. A
// toast replaced before its timer fires stays up for its own duration.
func (m *Toast) Show(text string, isError bool, duration time.Duration) tea.Cmd {
	m.Visible = true
	m.text = text
	m.isError = isError
	m.duration = duration
	if m.duration <= 0 {
		m.duration = defaultToastDuration
	}
	m.id++
	id := m.id
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return toastDismissMsg{id: id}
	})
}

// Update handles dismiss ticks.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if d, ok := msg.(toastDismissMsg); ok && d.id == m.id {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	t := m.styles.Theme()
	fg := t.Success
	if m.isError {
		fg = t.Error
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(t.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(m.text)
}
