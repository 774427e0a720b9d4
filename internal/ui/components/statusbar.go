package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

// clearStatusMsg clears the temporary message set with the same id.
type clearStatusMsg struct {
	id int
}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	mode      mode.Mode
	focus     msgs.PanelFocus
	loading   bool
	updatedAt time.Time
	message   string
	msgID     int
	width     int
	now       func() time.Time
	styles    theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(s theme.Styles) StatusBar {
	return StatusBar{
		styles: s,
		now:    time.Now,
	}
}

// SetMode sets the active mode.
func (m *StatusBar) SetMode(md mode.Mode) {
	m.mode = md
}

// SetFocus sets the focused panel shown in the indicator.
func (m *StatusBar) SetFocus(f msgs.PanelFocus) {
	m.focus = f
}

// SetLoading toggles the fetching indicator.
func (m *StatusBar) SetLoading(loading bool) {
	m.loading = loading
}

// SetUpdated records when the visible content last changed.
func (m *StatusBar) SetUpdated(t time.Time) {
	m.updatedAt = t
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message. A positive duration clears
// it after that long.
func (m *StatusBar) SetMessage(text string, d time.Duration) tea.Cmd {
	m.message = text
	m.msgID++
	if d <= 0 {
		return nil
	}
	id := m.msgID
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// Message returns the current temporary message.
func (m StatusBar) Message() string {
	return m.message
}

// Update handles clear ticks.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	if c, ok := msg.(clearStatusMsg); ok && c.id == m.msgID {
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	t := m.styles.Theme()
	seg := func(fg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(t.Surface)
	}

	modeStr := seg(t.ModeColor(m.mode)).Bold(true).Render("[" + strings.ToUpper(m.mode.String()) + "]")
	focusStr := seg(t.Muted).Render(m.focus.String())

	var left string
	switch {
	case m.message != "":
		left = seg(t.Text).Render(m.message)
	case m.loading:
		left = seg(t.Warning).Render("fetching...")
	case !m.updatedAt.IsZero():
		left = seg(t.Subtext).Render("updated " + humanize.RelTime(m.updatedAt, m.now(), "ago", "from now"))
	}

	hint := seg(t.Muted).Render("?:help  n:another  y:copy  q:quit")

	leftPart := " " + modeStr + " " + focusStr
	if left != "" {
		leftPart += seg(t.Muted).Render(" │ ") + left
	}

	gap := m.width - lipgloss.Width(leftPart) - lipgloss.Width(hint) - 1
	if gap < 1 {
		gap = 1
	}
	line := leftPart + strings.Repeat(" ", gap) + hint

	return lipgloss.NewStyle().
		Background(t.Surface).
		Foreground(t.Text).
		Width(m.width).
		Render(line)
}
