package layout

import "testing"

func TestCalculate_WideScreen(t *testing.T) {
	l := Calculate(160, 40, true)

	if l.Stacked {
		t.Error("should not stack at 160 cols")
	}
	if l.SidebarWidth < minSidebarWidth {
		t.Errorf("sidebar too narrow: %d < %d", l.SidebarWidth, minSidebarWidth)
	}
	if l.SidebarWidth > maxSidebarWidth {
		t.Errorf("sidebar too wide: %d > %d", l.SidebarWidth, maxSidebarWidth)
	}
	if total := l.SidebarWidth + l.MainWidth; total != 160 {
		t.Errorf("panel widths should sum to 160, got %d", total)
	}
	if l.ContentHeight != 38 {
		t.Errorf("content height = %d, want 38", l.ContentHeight)
	}
}

func TestCalculate_NarrowScreenStacks(t *testing.T) {
	l := Calculate(50, 21, true)

	if !l.Stacked {
		t.Fatal("expected stacked layout under 60 cols")
	}
	if l.SidebarWidth != 50 || l.MainWidth != 50 {
		t.Errorf("stacked panels should span full width, got %d/%d", l.SidebarWidth, l.MainWidth)
	}
	if total := l.SidebarHeight + l.MainHeight; total != l.ContentHeight {
		t.Errorf("stacked heights should sum to %d, got %d", l.ContentHeight, total)
	}
}

func TestCalculate_NoSidebar(t *testing.T) {
	l := Calculate(120, 30, false)

	if l.SidebarWidth != 0 {
		t.Errorf("hidden sidebar should have no width, got %d", l.SidebarWidth)
	}
	if l.MainWidth != 120 {
		t.Errorf("main width = %d, want 120", l.MainWidth)
	}
}

func TestCalculate_MinimumHeight(t *testing.T) {
	l := Calculate(80, 1, false)
	if l.ContentHeight != 1 {
		t.Errorf("content height should floor at 1, got %d", l.ContentHeight)
	}
}
