// Package search holds the query input shown in Search mode.
package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

// Model wraps a text input that submits on enter.
type Model struct {
	input   textinput.Model
	width   int
	focused bool
	styles  theme.Styles
}

// New creates a search input.
func New(s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = "Search for a joke"
	ti.CharLimit = 120
	ti.PromptStyle = s.Key
	ti.TextStyle = s.Normal
	return Model{input: ti, styles: s}
}

// SetWidth sets the available width.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.Width = max(1, w-len(m.input.Prompt)-4)
}

// Focus gives the input key focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes key focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused reports whether the input has key focus.
func (m Model) Focused() bool {
	return m.focused
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the input.
func (m *Model) Reset() {
	m.input.SetValue("")
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Enter emits SearchSubmittedMsg with the raw
// value; validation happens in the controller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			query := m.input.Value()
			return m, func() tea.Msg { return msgs.SearchSubmittedMsg{Query: query} }
		case "esc":
			m.Blur()
			return m, func() tea.Msg { return msgs.FocusMsg{Panel: msgs.FocusJoke} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}
	return border.Width(max(1, m.width-2)).Render(m.input.View())
}
