package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

// ModeBar is the top bar listing the three modes.
type ModeBar struct {
	active mode.Mode
	width  int
	styles theme.Styles
}

// NewModeBar creates a mode bar with Random active.
func NewModeBar(s theme.Styles) ModeBar {
	return ModeBar{styles: s, active: mode.Random}
}

// SetActive sets the highlighted mode.
func (m *ModeBar) SetActive(md mode.Mode) {
	m.active = md
}

// Active returns the highlighted mode.
func (m ModeBar) Active() mode.Mode {
	return m.active
}

// SetWidth sets the available width.
func (m *ModeBar) SetWidth(w int) {
	m.width = w
}

// View renders the mode bar.
func (m ModeBar) View() string {
	sep := m.styles.Muted.Render("│")

	parts := make([]string, 0, len(mode.All))
	for i, md := range mode.All {
		label := fmt.Sprintf("%d %s", i+1, md.Title())
		if md == m.active {
			parts = append(parts, m.styles.ModeTab(md).Render(label))
		} else {
			parts = append(parts, m.styles.TabInactive.Render(label))
		}
	}

	brand := m.styles.Key.Bold(true).Render(" gojoke ")
	line := brand + sep + strings.Join(parts, sep)

	if w := lipgloss.Width(line); w < m.width {
		line += strings.Repeat(" ", m.width-w)
	}
	return line
}
