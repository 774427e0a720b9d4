package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/ui/msgs"
)

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}

	// Text inputs own every key while focused.
	if a.focus == msgs.FocusSearch && a.search.Focused() {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	if a.focus == msgs.FocusSidebar && a.sidebar.Filtering() {
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return a, cmd
	}

	if cmd := a.handleGlobalKey(msg); cmd != nil {
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.CycleFocus):
		return a, a.cycleFocus()
	case key.Matches(msg, a.keys.Find):
		return a.find()
	}

	if a.focus == msgs.FocusSidebar {
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.RandomMode):
		return switchTo(mode.Random)
	case key.Matches(msg, a.keys.CategoryMode):
		return switchTo(mode.Category)
	case key.Matches(msg, a.keys.SearchMode):
		return switchTo(mode.Search)
	case key.Matches(msg, a.keys.Another):
		return func() tea.Msg { return msgs.AnotherJokeMsg{} }
	case key.Matches(msg, a.keys.Copy):
		return func() tea.Msg { return msgs.CopyJokeMsg{} }
	case key.Matches(msg, a.keys.Reload):
		if a.ctrl.Mode() == mode.Category {
			return func() tea.Msg { return msgs.ReloadCategoriesMsg{} }
		}
	}
	return nil
}

func switchTo(md mode.Mode) tea.Cmd {
	return func() tea.Msg { return msgs.SwitchModeMsg{Mode: md} }
}

// find opens the category filter or focuses the search input.
func (a App) find() (App, tea.Cmd) {
	switch a.ctrl.Mode() {
	case mode.Category:
		a.setFocus(msgs.FocusSidebar)
		return a, a.sidebar.StartFilter()
	case mode.Search:
		return a, a.setFocus(msgs.FocusSearch)
	}
	return a, nil
}
