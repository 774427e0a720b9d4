// Package sidebar renders the category list used in Category mode.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/gojoke/internal/core/state"
	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

// Model is the category list panel.
type Model struct {
	categories []string
	selected   string
	loading    bool
	err        string

	filtered []int // indices into categories that match the filter
	cursor   int   // index into filtered

	width   int
	height  int
	focused bool

	filtering   bool
	filterInput textinput.Model
	spinner     spinner.Model

	styles theme.Styles
}

// New creates a new sidebar model.
func New(s theme.Styles) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Accent)

	return Model{
		styles:      s,
		filterInput: ti,
		spinner:     sp,
	}
}

// Sync copies the category slice into the panel. The cursor follows the
// selected category when the list is first populated.
func (m *Model) Sync(c state.CategorySlice) {
	first := len(m.categories) == 0 && len(c.Categories) > 0
	m.categories = c.Categories
	m.selected, _ = c.Selected()
	m.loading = c.CategoriesLoading
	m.err = state.Deref(c.CategoriesError)
	m.applyFilter()
	if first && m.selected != "" {
		m.moveCursorTo(m.selected)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
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

// Filtering reports whether the filter input has key focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// StartFilter focuses the filter input.
func (m *Model) StartFilter() tea.Cmd {
	m.filtering = true
	m.filterInput.Focus()
	return textinput.Blink
}

// Current returns the category under the cursor.
func (m Model) Current() (string, bool) {
	if len(m.filtered) == 0 {
		return "", false
	}
	return m.categories[m.filtered[m.cursor]], true
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

	if m.filtering {
		return m.updateFilter(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.filtered)-1)
	case "enter", "l":
		if name, ok := m.Current(); ok {
			return m, func() tea.Msg {
				return msgs.CategorySelectedMsg{Name: name}
			}
		}
	case "/":
		return m, m.StartFilter()
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			if name, ok := m.Current(); ok {
				return m, func() tea.Msg {
					return msgs.CategorySelectedMsg{Name: name}
				}
			}
			return m, nil
		case "up", "down":
			return m.handleKey(key)
		}
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.applyFilter()
		m.cursor = 0
	}
	return m, cmd
}

// applyFilter ranks categories by fuzzy score. An empty filter keeps the
// server order.
func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.filterInput.Value())
	m.filtered = m.filtered[:0]

	if query == "" {
		for i := range m.categories {
			m.filtered = append(m.filtered, i)
		}
		return
	}
	for _, match := range fuzzy.Find(query, m.categories) {
		m.filtered = append(m.filtered, match.Index)
	}
}

func (m *Model) moveCursorTo(name string) {
	for vi, idx := range m.filtered {
		if m.categories[idx] == name {
			m.cursor = vi
			return
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	border := m.styles.UnfocusedBorder
	if m.focused {
		border = m.styles.FocusedBorder
	}

	innerW := max(1, m.width-2)
	innerH := max(1, m.height-2)

	title := m.styles.Title.Render("Categories")
	if m.loading {
		title += " " + m.spinner.View()
	}
	lines := []string{title, ""}

	switch {
	case m.err != "":
		lines = append(lines, m.styles.Error.Render(m.err), m.styles.Hint.Render("r to retry"))
	case len(m.categories) == 0 && m.loading:
		lines = append(lines, m.styles.Muted.Render("Loading..."))
	case len(m.filtered) == 0:
		lines = append(lines, m.styles.Muted.Render("No categories"))
	default:
		lines = append(lines, m.renderList(innerW, innerH-len(lines))...)
	}

	listH := innerH
	if m.filtering {
		listH--
	}
	content := fitHeight(strings.Join(lines, "\n"), listH)
	if m.filtering {
		content += "\n" + m.filterInput.View()
	}

	return border.
		Width(innerW).
		Height(innerH).
		Render(content)
}

// renderList returns the visible window of rows around the cursor.
func (m Model) renderList(width, height int) []string {
	if m.filtering {
		height--
	}
	height = max(1, height)

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(len(m.filtered), start+height)

	rows := make([]string, 0, end-start)
	for vi := start; vi < end; vi++ {
		name := m.categories[m.filtered[vi]]
		marker := "  "
		style := m.styles.Normal
		if name == m.selected {
			marker = "● "
			style = m.styles.Category
		}
		row := marker + name
		if vi == m.cursor && m.focused {
			rows = append(rows, m.styles.Cursor.Width(width).Render(truncate(row, width)))
			continue
		}
		rows = append(rows, style.Render(truncate(row, width)))
	}
	return rows
}

func fitHeight(content string, h int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
