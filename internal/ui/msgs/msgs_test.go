package msgs

import "testing"

func TestPanelFocusString(t *testing.T) {
	tests := []struct {
		name  string
		focus PanelFocus
		want  string
	}{
		{name: "joke", focus: FocusJoke, want: "JOKE"},
		{name: "sidebar", focus: FocusSidebar, want: "CATEGORIES"},
		{name: "search", focus: FocusSearch, want: "SEARCH"},
		{name: "unknown", focus: PanelFocus(999), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.focus.String()
			if got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
