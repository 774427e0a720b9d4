package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

func testStyles() theme.Styles {
	return theme.NewStyles(theme.Default())
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// ─────────────────────────────────────────────────────────────────────────────
// ModeBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestModeBar_NewDefault(t *testing.T) {
	bar := NewModeBar(testStyles())
	if bar.Active() != mode.Random {
		t.Fatalf("expected Random active, got %s", bar.Active())
	}
}

func TestModeBar_View_ListsModes(t *testing.T) {
	bar := NewModeBar(testStyles())
	bar.SetWidth(100)
	bar.SetActive(mode.Search)

	view := bar.View()
	for _, want := range []string{"1 Random", "2 Category", "3 Search"} {
		if !strings.Contains(view, want) {
			t.Errorf("mode bar missing %q:\n%s", want, view)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// StatusBar tests
// ─────────────────────────────────────────────────────────────────────────────

func TestStatusBar_View_ContainsModeIndicator(t *testing.T) {
	sb := NewStatusBar(testStyles())
	sb.SetWidth(120)
	sb.SetMode(mode.Category)
	sb.SetFocus(msgs.FocusSidebar)

	view := sb.View()
	if !strings.Contains(view, "[CATEGORY]") {
		t.Errorf("status bar missing mode:\n%s", view)
	}
	if !strings.Contains(view, "CATEGORIES") {
		t.Errorf("status bar missing focus:\n%s", view)
	}
	if !strings.Contains(view, "?:help") {
		t.Errorf("status bar missing help hint:\n%s", view)
	}
}

func TestStatusBar_UpdatedAgo(t *testing.T) {
	sb := NewStatusBar(testStyles())
	sb.SetWidth(120)
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	sb.now = func() time.Time { return now }
	sb.SetUpdated(now.Add(-3 * time.Minute))

	if view := sb.View(); !strings.Contains(view, "updated 3 minutes ago") {
		t.Errorf("status bar missing relative time:\n%s", view)
	}

	sb.SetLoading(true)
	if view := sb.View(); !strings.Contains(view, "fetching...") {
		t.Errorf("loading should replace relative time:\n%s", view)
	}
}

func TestStatusBar_MessageClearedByMatchingTick(t *testing.T) {
	sb := NewStatusBar(testStyles())
	sb.SetWidth(120)

	cmd := sb.SetMessage("Copied!", time.Second)
	if cmd == nil {
		t.Fatal("expected clear tick")
	}
	if !strings.Contains(sb.View(), "Copied!") {
		t.Fatal("message not rendered")
	}

	stale := clearStatusMsg{id: sb.msgID}
	sb.SetMessage("Second", 0)
	sb, _ = sb.Update(stale)
	if sb.Message() != "Second" {
		t.Fatalf("stale tick cleared newer message, got %q", sb.Message())
	}

	sb, _ = sb.Update(clearStatusMsg{id: sb.msgID})
	if sb.Message() != "" {
		t.Fatalf("message = %q, want cleared", sb.Message())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Toast tests
// ─────────────────────────────────────────────────────────────────────────────

func TestToast_NewDefault(t *testing.T) {
	toast := NewToast(testStyles())
	if toast.Visible {
		t.Fatal("toast should start hidden")
	}
	if toast.View() != "" {
		t.Fatal("hidden toast should render empty string")
	}
}

func TestToast_Show(t *testing.T) {
	toast := NewToast(testStyles())

	cmd := toast.Show("Copied to clipboard", false, 2*time.Second)
	if !toast.Visible {
		t.Fatal("toast should be visible after Show")
	}
	if toast.duration != 2*time.Second {
		t.Fatalf("expected duration 2s, got %v", toast.duration)
	}
	if cmd == nil {
		t.Fatal("Show should return a tick cmd for auto-dismiss")
	}
	if !strings.Contains(toast.View(), "Copied to clipboard") {
		t.Error("toast view should contain the message text")
	}
}

func TestToast_Show_DefaultDuration(t *testing.T) {
	toast := NewToast(testStyles())
	toast.Show("Failed!", true, 0)
	if !toast.isError {
		t.Fatal("toast should be in error state")
	}
	if toast.duration != defaultToastDuration {
		t.Fatalf("expected default duration, got %v", toast.duration)
	}
}

func TestToast_StaleDismissKeepsNewerToast(t *testing.T) {
	toast := NewToast(testStyles())
	toast.Show("first", false, time.Second)
	first := toastDismissMsg{id: toast.id}
	toast.Show("second", false, time.Second)

	toast, _ = toast.Update(first)
	if !toast.Visible {
		t.Fatal("dismiss for the first toast hid the second")
	}

	toast, _ = toast.Update(toastDismissMsg{id: toast.id})
	if toast.Visible || toast.text != "" {
		t.Fatal("toast should be hidden after its own dismiss")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Help tests
// ─────────────────────────────────────────────────────────────────────────────

func TestHelp_ToggleAndClose(t *testing.T) {
	h := NewHelp(testStyles())
	h.SetSize(100, 40)

	h.Toggle()
	if !h.Visible {
		t.Fatal("help should be visible after toggle")
	}
	view := h.View()
	for _, want := range []string{"Keyboard Shortcuts", "Another joke", "Submit search"} {
		if !strings.Contains(view, want) {
			t.Errorf("help view missing %q", want)
		}
	}

	h, _ = h.Update(keyMsg("?"))
	if h.Visible {
		t.Fatal("? should close help")
	}
	if h.View() != "" {
		t.Fatal("hidden help should render empty string")
	}
}
