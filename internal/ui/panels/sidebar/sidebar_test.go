package sidebar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/gojoke/internal/core/state"
	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

func newSidebarForTest(categories ...string) Model {
	m := New(theme.NewStyles(theme.Default()))
	m.SetSize(30, 20)
	m.SetFocused(true)
	m.Sync(state.CategorySlice{Categories: categories, CategoriesLoaded: true})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSidebar_NavigateAndSelect(t *testing.T) {
	m := newSidebarForTest("animal", "career", "dev")

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	if got, _ := m.Current(); got != "dev" {
		t.Fatalf("cursor on %q, want dev (clamped at end)", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected CategorySelected command")
	}
	sel, ok := cmd().(msgs.CategorySelectedMsg)
	if !ok {
		t.Fatalf("got %T, want CategorySelectedMsg", cmd())
	}
	if sel.Name != "dev" {
		t.Fatalf("selected %q, want dev", sel.Name)
	}
}

func TestSidebar_FuzzyFilter(t *testing.T) {
	m := newSidebarForTest("animal", "career", "celebrity", "dev")

	m, _ = m.Update(runes("/"))
	if !m.Filtering() {
		t.Fatal("expected filtering mode enabled")
	}
	m, _ = m.Update(runes("c"))
	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("b"))

	if len(m.filtered) != 1 {
		t.Fatalf("filtered len = %d, want 1", len(m.filtered))
	}
	if got, _ := m.Current(); got != "celebrity" {
		t.Fatalf("current = %q, want celebrity", got)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Filtering() {
		t.Fatal("enter should leave filter mode")
	}
	if sel, ok := cmd().(msgs.CategorySelectedMsg); !ok || sel.Name != "celebrity" {
		t.Fatalf("got %#v, want CategorySelectedMsg{celebrity}", cmd())
	}
}

func TestSidebar_FilterCursorSurvivesBlink(t *testing.T) {
	m := newSidebarForTest("animal", "career", "celebrity", "dev")

	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("c"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	moved, _ := m.Current()
	if m.cursor != 1 {
		t.Fatalf("cursor = %d after down, want 1", m.cursor)
	}

	m, _ = m.Update(cursor.BlinkMsg{})
	m, _ = m.Update(struct{}{})
	if got, _ := m.Current(); got != moved {
		t.Fatalf("cursor moved to %q after non-key messages, want %q", got, moved)
	}

	m, _ = m.Update(runes("e"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d after filter edit, want 0", m.cursor)
	}
}

func TestSidebar_EscClearsFilter(t *testing.T) {
	m := newSidebarForTest("animal", "dev")

	m, _ = m.Update(runes("/"))
	m, _ = m.Update(runes("d"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.Filtering() {
		t.Fatal("expected filtering disabled on esc")
	}
	if len(m.filtered) != 2 {
		t.Fatalf("filtered len = %d, want 2 after esc", len(m.filtered))
	}
}

func TestSidebar_EmptyListSelectsNothing(t *testing.T) {
	m := newSidebarForTest()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("enter on empty list must not select")
	}
}

func TestSidebar_SyncFollowsSelection(t *testing.T) {
	m := New(theme.NewStyles(theme.Default()))
	m.SetSize(30, 20)
	m.Sync(state.CategorySlice{
		Categories:       []string{"animal", "dev", "food"},
		SelectedCategory: state.Ptr("food"),
	})
	if got, _ := m.Current(); got != "food" {
		t.Fatalf("cursor on %q, want food", got)
	}
}

func TestSidebar_ViewStates(t *testing.T) {
	m := New(theme.NewStyles(theme.Default()))
	m.SetSize(30, 10)

	m.Sync(state.CategorySlice{CategoriesLoading: true})
	if view := m.View(); !strings.Contains(view, "Loading") {
		t.Errorf("loading view missing indicator:\n%s", view)
	}

	m.Sync(state.CategorySlice{CategoriesError: state.Ptr("Failed to fetch categories.")})
	if view := m.View(); !strings.Contains(view, "Failed to fetch categories.") {
		t.Errorf("error view missing message:\n%s", view)
	}

	m.Sync(state.CategorySlice{Categories: []string{"dev"}, SelectedCategory: state.Ptr("dev")})
	if view := m.View(); !strings.Contains(view, "dev") {
		t.Errorf("list view missing category:\n%s", view)
	}
}
