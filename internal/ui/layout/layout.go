package layout

// PanelLayout holds calculated dimensions for the sidebar and joke panel.
type PanelLayout struct {
	Width  int
	Height int

	SidebarWidth  int
	SidebarHeight int
	MainWidth     int
	MainHeight    int

	ContentHeight int // height minus tab bar and status bar

	SidebarVisible bool
	// Stacked places the sidebar above the joke panel on narrow terminals.
	Stacked bool
}

const (
	tabBarHeight    = 1
	statusBarHeight = 1
	minSidebarWidth = 18
	maxSidebarWidth = 30
	stackedWidth    = 60
)

// Calculate computes the panel layout from terminal dimensions.
func Calculate(width, height int, sidebarVisible bool) PanelLayout {
	l := PanelLayout{
		Width:          width,
		Height:         height,
		SidebarVisible: sidebarVisible,
		ContentHeight:  height - tabBarHeight - statusBarHeight,
	}

	if l.ContentHeight < 1 {
		l.ContentHeight = 1
	}

	switch {
	case !sidebarVisible:
		l.MainWidth = width
		l.MainHeight = l.ContentHeight
	case width < stackedWidth:
		l.Stacked = true
		l.SidebarWidth = width
		l.MainWidth = width
		l.SidebarHeight = l.ContentHeight / 2
		l.MainHeight = l.ContentHeight - l.SidebarHeight
	default:
		l.SidebarWidth = clamp(width/4, minSidebarWidth, maxSidebarWidth)
		l.MainWidth = width - l.SidebarWidth
		l.SidebarHeight = l.ContentHeight
		l.MainHeight = l.ContentHeight
	}

	return l
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
