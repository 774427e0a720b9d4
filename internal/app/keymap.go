package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	RandomMode   key.Binding
	CategoryMode key.Binding
	SearchMode   key.Binding

	Another key.Binding
	Copy    key.Binding
	Reload  key.Binding
	Find    key.Binding

	CycleFocus key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		RandomMode: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "random"),
		),
		CategoryMode: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "category"),
		),
		SearchMode: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "search"),
		),
		Another: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "another joke"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy joke"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload categories"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter / search"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch panel"),
		),
	}
}
