package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sadopc/gojoke/internal/core/mode"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  catppuccin mocha ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Catppuccin Mocha" {
		t.Fatalf("theme name = %q, want Catppuccin Mocha", got.Name)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 built-in themes, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestResolveBuiltInTheme(t *testing.T) {
	got := Resolve("dracula", "")
	if got.Name != "Dracula" {
		t.Fatalf("Resolve(dracula) returned %q, want Dracula", got.Name)
	}
}

func TestResolveCustomTheme(t *testing.T) {
	dir := t.TempDir()
	yaml := "name: Ocean Breeze\nbase: \"#001122\"\ntext: \"#ffffff\"\n"
	if err := os.WriteFile(filepath.Join(dir, "ocean-breeze.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got := Resolve("ocean breeze", dir)
	if got.Name != "Ocean Breeze" {
		t.Fatalf("Resolve(custom) name = %q, want Ocean Breeze", got.Name)
	}
	if got.Base != "#001122" {
		t.Fatalf("Resolve(custom) base = %q, want #001122", got.Base)
	}
	if got.Accent != CatppuccinMocha.Accent {
		t.Fatalf("omitted color = %q, want default %q", got.Accent, CatppuccinMocha.Accent)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	got := Resolve("not-a-real-theme", t.TempDir())
	if got.Name != CatppuccinMocha.Name {
		t.Fatalf("Resolve(unknown) name = %q, want %q", got.Name, CatppuccinMocha.Name)
	}
}

func TestCustomDir(t *testing.T) {
	if got := CustomDir("/etc/gojoke"); got != filepath.Join("/etc/gojoke", "themes") {
		t.Fatalf("CustomDir() = %q", got)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := CustomDir(""); got != filepath.Join(home, ".config", "gojoke", "themes") {
		t.Fatalf("CustomDir(\"\") = %q", got)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-theme.yaml")

	if err := os.WriteFile(path, []byte("base: \"#010203\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Name != "my-theme" {
		t.Fatalf("Name = %q, want my-theme", got.Name)
	}
}

func TestLoadCustomThemeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	if err := os.WriteFile(path, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadCustomTheme(path); err == nil {
		t.Fatal("expected parsing error for invalid yaml")
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"forest.yaml": "name: Forest\nbase: \"#102030\"\n",
		"broken.yaml": "name: [\n",
		"readme.txt":  "ignore me",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("LoadCustomThemes() loaded %d themes, want 1", len(themes))
	}
	if got, ok := themes[normalizeKey("Forest")]; !ok || got.Name != "Forest" {
		t.Fatalf("expected Forest theme, got %#v (ok=%v)", got, ok)
	}
}

func TestModeColor(t *testing.T) {
	theme := Default()

	if got := theme.ModeColor(mode.Random); got != theme.Accent {
		t.Fatalf("random color = %q, want %q", got, theme.Accent)
	}
	if got := theme.ModeColor(mode.Category); got != theme.Secondary {
		t.Fatalf("category color = %q, want %q", got, theme.Secondary)
	}
	if got := theme.ModeColor(mode.Search); got != theme.Info {
		t.Fatalf("search color = %q, want %q", got, theme.Info)
	}
}

func TestNewStylesKeepsTheme(t *testing.T) {
	s := NewStyles(Nord)
	if s.Theme().Name != "Nord" {
		t.Fatalf("Theme().Name = %q, want Nord", s.Theme().Name)
	}
}
