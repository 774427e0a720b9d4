package theme

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Catalog maps normalized theme names to themes.
var Catalog = map[string]Theme{}

func init() {
	for _, t := range []Theme{CatppuccinMocha, CatppuccinLatte, Nord, Dracula, GruvboxDark, TokyoNight} {
		Catalog[normalizeKey(t.Name)] = t
	}
}

// Get returns a built-in theme by name.
func Get(name string) (Theme, bool) {
	t, ok := Catalog[normalizeKey(name)]
	return t, ok
}

// Names returns all built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for _, t := range Catalog {
		names = append(names, t.Name)
	}
	slices.Sort(names)
	return names
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// Resolve looks a theme up in the catalog, then in customDir, and falls
// back to the default.
func Resolve(name, customDir string) Theme {
	if t, ok := Get(name); ok {
		return t
	}
	if customDir != "" {
		if t, ok := LoadCustomThemes(customDir)[normalizeKey(name)]; ok {
			return t
		}
	}
	return Default()
}

// CustomDir returns the directory custom themes are read from.
func CustomDir(configDir string) string {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config", "gojoke")
	}
	return filepath.Join(configDir, "themes")
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
