package state

// SliceID names one region of the store.
type SliceID int

const (
	SliceJoke SliceID = iota
	SliceCategory
	SliceSearch
)

func (id SliceID) String() string {
	switch id {
	case SliceJoke:
		return "joke"
	case SliceCategory:
		return "category"
	case SliceSearch:
		return "search"
	default:
		return "unknown"
	}
}

// JokeSlice holds the random-mode joke.
type JokeSlice struct {
	Joke      string
	IsLoading bool
	Error     *string
}

// CategorySlice holds the category list, the selection and the joke
// fetched for the selection. The list has its own loading and error pair.
type CategorySlice struct {
	Categories       []string
	SelectedCategory *string
	Joke             string
	IsLoading        bool
	Error            *string

	CategoriesLoading bool
	CategoriesError   *string
	CategoriesLoaded  bool
}

// Selected returns the selected category and whether one is set.
func (c CategorySlice) Selected() (string, bool) {
	if c.SelectedCategory == nil {
		return "", false
	}
	return *c.SelectedCategory, true
}

// SearchSlice holds the last submitted query and its result.
type SearchSlice struct {
	Query     string
	Result    string
	IsLoading bool
	Error     *string
}

func (j JokeSlice) clone() JokeSlice {
	j.Error = cloneString(j.Error)
	return j
}

func (c CategorySlice) clone() CategorySlice {
	c.Categories = append([]string(nil), c.Categories...)
	c.SelectedCategory = cloneString(c.SelectedCategory)
	c.Error = cloneString(c.Error)
	c.CategoriesError = cloneString(c.CategoriesError)
	return c
}

func (s SearchSlice) clone() SearchSlice {
	s.Error = cloneString(s.Error)
	return s
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. Handy for nullable string fields.
func Ptr(v string) *string {
	return &v
}

// Deref returns *p, or "" for nil.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
