package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/gojoke/internal/core/mode"
)

const searchInputHeight = 3

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var content string
	switch a.ctrl.Mode() {
	case mode.Category:
		if a.layout.Stacked {
			content = lipgloss.JoinVertical(lipgloss.Left, a.sidebar.View(), a.joke.View())
		} else {
			content = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), a.joke.View())
		}
	case mode.Search:
		content = lipgloss.JoinVertical(lipgloss.Left, a.search.View(), a.joke.View())
	default:
		content = a.joke.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left, a.modeBar.View(), content, a.statusBar.View())

	if a.help.Visible {
		main = a.overlayCenter(a.help.View())
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}
	return main
}

func (a App) overlayCenter(overlay string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(a.styles.Theme().Base),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	gap := max(0, width-lipgloss.Width(overlay)-2)
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
