// Package mode is the browsing-mode state machine. Transitions are pure:
// they return the next mode and the effects the caller must apply.
package mode

import (
	"fmt"
	"strings"
)

// Mode is the active browsing strategy.
type Mode int

const (
	Random Mode = iota
	Category
	Search
)

// All lists the modes in display order.
var All = []Mode{Random, Category, Search}

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Category:
		return "category"
	case Search:
		return "search"
	default:
		return "unknown"
	}
}

// Title is the label shown in the mode tab bar.
func (m Mode) Title() string {
	switch m {
	case Random:
		return "Random"
	case Category:
		return "Category"
	case Search:
		return "Search"
	default:
		return "?"
	}
}

// Parse converts a mode name (case-insensitive) to a Mode.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return Random, nil
	case "category", "categories":
		return Category, nil
	case "search":
		return Search, nil
	}
	return Random, fmt.Errorf("unknown mode %q (want random, category or search)", s)
}

// Effect is a side effect a transition asks the caller to perform.
type Effect int

const (
	// ClearSearch resets the search query, result and error.
	ClearSearch Effect = iota
	// ClearSelectedCategory resets the selected category to none.
	ClearSelectedCategory
	// FetchRandom starts a random joke fetch.
	FetchRandom
	// LoadCategories loads the category list unless it is already loaded.
	LoadCategories
)

func (e Effect) String() string {
	switch e {
	case ClearSearch:
		return "clear-search"
	case ClearSelectedCategory:
		return "clear-selected-category"
	case FetchRandom:
		return "fetch-random"
	case LoadCategories:
		return "load-categories"
	default:
		return "unknown"
	}
}

// Transition returns the mode after switching from -> to and the effects
// of entering to. Switching to the current mode has no effects.
func Transition(from, to Mode) (Mode, []Effect) {
	if from == to {
		return from, nil
	}
	switch to {
	case Random:
		return Random, []Effect{ClearSearch, ClearSelectedCategory, FetchRandom}
	case Category:
		return Category, []Effect{ClearSearch, LoadCategories}
	case Search:
		return Search, []Effect{ClearSelectedCategory}
	}
	return from, nil
}

// Initial returns the effects of starting in m, as if entering it from
// nowhere. The default start mode is Random, which fetches eagerly.
func Initial(m Mode) []Effect {
	switch m {
	case Random:
		return []Effect{FetchRandom}
	case Category:
		return []Effect{LoadCategories}
	}
	return nil
}
