package state

import "sync"

// Channel identifies one fetch lifecycle inside the store. Each channel has
// its own dispatch sequence and writes only its own fields.
type Channel int

const (
	ChannelRandom Channel = iota
	ChannelCategoryJoke
	ChannelCategories
	ChannelSearch
	numChannels
)

func (c Channel) String() string {
	switch c {
	case ChannelRandom:
		return "random"
	case ChannelCategoryJoke:
		return "category-joke"
	case ChannelCategories:
		return "categories"
	case ChannelSearch:
		return "search"
	default:
		return "unknown"
	}
}

// Slice returns the slice a channel writes to.
func (c Channel) Slice() SliceID {
	switch c {
	case ChannelRandom:
		return SliceJoke
	case ChannelSearch:
		return SliceSearch
	default:
		return SliceCategory
	}
}

// Seq tags a dispatched fetch. Zero is never issued.
type Seq uint64

// Store holds the joke, category and search slices.
//
// Every fetch is started with Begin, which returns the channel's new latest
// sequence number. Resolve and Fail calls carrying any other sequence are
// dropped, so a slow response can never overwrite a newer one.
type Store struct {
	mu sync.RWMutex

	joke     JokeSlice
	category CategorySlice
	search   SearchSlice

	latest [numChannels]Seq

	listeners  []subscription
	nextListen int
}

// NewStore creates a store with empty slices.
func NewStore() *Store {
	return &Store{}
}

// Joke returns a snapshot of the joke slice.
func (s *Store) Joke() JokeSlice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joke.clone()
}

// Category returns a snapshot of the category slice.
func (s *Store) Category() CategorySlice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category.clone()
}

// Search returns a snapshot of the search slice.
func (s *Store) Search() SearchSlice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search.clone()
}

// Latest returns the most recently dispatched sequence for ch.
func (s *Store) Latest(ch Channel) Seq {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest[ch]
}

// Begin marks ch as loading and returns the sequence the eventual
// resolution must carry. Existing data and error stay visible.
func (s *Store) Begin(ch Channel) Seq {
	s.mu.Lock()
	s.latest[ch]++
	seq := s.latest[ch]
	s.setLoading(ch, true)
	s.mu.Unlock()

	s.notify(Change{Slice: ch.Slice()})
	return seq
}

// ResolveJoke stores a random joke if seq is current.
func (s *Store) ResolveJoke(seq Seq, joke string) bool {
	return s.resolve(ChannelRandom, seq, true, func() {
		s.joke.Joke = joke
		s.joke.Error = nil
	})
}

// ResolveCategoryJoke stores a joke for the selected category if seq is current.
func (s *Store) ResolveCategoryJoke(seq Seq, joke string) bool {
	return s.resolve(ChannelCategoryJoke, seq, true, func() {
		s.category.Joke = joke
		s.category.Error = nil
	})
}

// ResolveCategories stores the category list if seq is current.
func (s *Store) ResolveCategories(seq Seq, categories []string) bool {
	cats := append([]string(nil), categories...)
	return s.resolve(ChannelCategories, seq, true, func() {
		s.category.Categories = cats
		s.category.CategoriesLoaded = true
		s.category.CategoriesError = nil
	})
}

// ResolveSearch stores a search result (possibly the no-results sentinel)
// if seq is current.
func (s *Store) ResolveSearch(seq Seq, result string) bool {
	return s.resolve(ChannelSearch, seq, true, func() {
		s.search.Result = result
		s.search.Error = nil
	})
}

// Fail records message as the channel's error if seq is current. The
// slice's data keeps its last good value.
func (s *Store) Fail(ch Channel, seq Seq, message string) bool {
	msg := message
	return s.resolve(ch, seq, false, func() {
		switch ch {
		case ChannelRandom:
			s.joke.Error = &msg
		case ChannelCategoryJoke:
			s.category.Error = &msg
		case ChannelCategories:
			s.category.CategoriesError = &msg
		case ChannelSearch:
			s.search.Error = &msg
		}
	})
}

func (s *Store) resolve(ch Channel, seq Seq, data bool, apply func()) bool {
	s.mu.Lock()
	if seq == 0 || seq != s.latest[ch] {
		s.mu.Unlock()
		return false
	}
	apply()
	s.setLoading(ch, false)
	s.mu.Unlock()

	s.notify(Change{Slice: ch.Slice(), Data: data})
	return true
}

// setLoading must be called with mu held.
func (s *Store) setLoading(ch Channel, loading bool) {
	switch ch {
	case ChannelRandom:
		s.joke.IsLoading = loading
	case ChannelCategoryJoke:
		s.category.IsLoading = loading
	case ChannelCategories:
		s.category.CategoriesLoading = loading
	case ChannelSearch:
		s.search.IsLoading = loading
	}
}

// Abandon invalidates any in-flight fetch on ch and clears its loading
// flag. A later resolution of the abandoned fetch is dropped.
func (s *Store) Abandon(ch Channel) {
	s.mu.Lock()
	s.latest[ch]++
	s.setLoading(ch, false)
	s.mu.Unlock()

	s.notify(Change{Slice: ch.Slice()})
}

// SetSelectedCategory sets or clears (nil) the selected category.
func (s *Store) SetSelectedCategory(category *string) {
	s.mu.Lock()
	if category == nil {
		s.category.SelectedCategory = nil
	} else {
		c := *category
		s.category.SelectedCategory = &c
	}
	s.mu.Unlock()

	s.notify(Change{Slice: SliceCategory})
}

// SetSearchQuery stores the submitted query.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.search.Query = query
	s.mu.Unlock()

	s.notify(Change{Slice: SliceSearch})
}

// SetSearchResult overwrites the search result directly.
func (s *Store) SetSearchResult(result string) {
	s.mu.Lock()
	s.search.Result = result
	s.mu.Unlock()

	s.notify(Change{Slice: SliceSearch, Data: true})
}

// SetSearchError sets or clears (nil) the search error without touching
// the loading flag. Used for local validation errors.
func (s *Store) SetSearchError(message *string) {
	s.mu.Lock()
	if message == nil {
		s.search.Error = nil
	} else {
		m := *message
		s.search.Error = &m
	}
	s.mu.Unlock()

	s.notify(Change{Slice: SliceSearch})
}

// ClearSearch resets query, result and error. An in-flight search is
// abandoned so its late result cannot repopulate the cleared slice.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	s.search.Query = ""
	s.search.Result = ""
	s.search.Error = nil
	if s.search.IsLoading {
		s.latest[ChannelSearch]++
		s.search.IsLoading = false
	}
	s.mu.Unlock()

	s.notify(Change{Slice: SliceSearch})
}
