// Package msgs defines the messages exchanged between the app model and
// its components.
package msgs

import (
	"time"

	"github.com/sadopc/gojoke/internal/core/controller"
	"github.com/sadopc/gojoke/internal/core/mode"
)

// PanelFocus is the panel receiving key input.
type PanelFocus int

const (
	FocusJoke PanelFocus = iota
	FocusSidebar
	FocusSearch
)

func (f PanelFocus) String() string {
	switch f {
	case FocusJoke:
		return "JOKE"
	case FocusSidebar:
		return "CATEGORIES"
	case FocusSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// SwitchModeMsg requests a mode change.
type SwitchModeMsg struct {
	Mode mode.Mode
}

// FetchDoneMsg carries the outcome of a fetch job back to the event loop.
type FetchDoneMsg struct {
	Outcome controller.Outcome
}

// AnotherJokeMsg requests a new joke for the active mode.
type AnotherJokeMsg struct{}

// CategorySelectedMsg is emitted when a category is picked in the sidebar.
type CategorySelectedMsg struct {
	Name string
}

// SearchSubmittedMsg is emitted when the search input is submitted.
type SearchSubmittedMsg struct {
	Query string
}

// ReloadCategoriesMsg forces a category list refetch.
type ReloadCategoriesMsg struct{}

// CopyJokeMsg copies the visible joke to the clipboard.
type CopyJokeMsg struct{}

// FocusMsg moves key focus to a panel.
type FocusMsg struct {
	Panel PanelFocus
}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}
