// Package controller drives the store from user intents: mode switches,
// category selection, search submission and "another joke".
//
// Methods that start a fetch return a Job. A Job only talks to the network
// and may run on any goroutine; its Outcome must be handed back to Apply on
// the goroutine that owns the UI loop.
package controller

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/core/state"
)

// Messages shown to the user. Raw errors are only logged.
const (
	MsgFetchJoke       = "Error fetching joke"
	MsgFetchCategories = "Failed to fetch categories."
	MsgSearch          = "Error while searching for a joke"
	MsgEmptyQuery      = "Please enter the search string"
)

var (
	// ErrEmptyQuery is returned by SubmitSearch for a blank query.
	ErrEmptyQuery = errors.New(MsgEmptyQuery)
	// ErrNoCategorySelected is returned when a category joke is requested
	// before a category is selected.
	ErrNoCategorySelected = errors.New("no category selected")
	// ErrNotFetchable is returned by AnotherJoke in search mode.
	ErrNotFetchable = errors.New("search mode fetches on submit")
	// ErrWrongMode is returned when an action does not belong to the active mode.
	ErrWrongMode = errors.New("action not available in this mode")
)

// Fetcher is implemented by jokes.Service.
type Fetcher interface {
	FetchRandom(ctx context.Context) (string, error)
	FetchByCategory(ctx context.Context, category string) (string, error)
	FetchBySearch(ctx context.Context, query string) (string, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

// Outcome is the result of a Job.
type Outcome struct {
	Channel    state.Channel
	Seq        state.Seq
	Joke       string
	Categories []string
	Err        error
}

// Job performs one fetch. It must not touch the store.
type Job func(ctx context.Context) Outcome

// Controller owns the active mode and dispatches against the store.
type Controller struct {
	store   *state.Store
	fetcher Fetcher
	logger  *zap.Logger
	mode    mode.Mode
}

// New creates a controller in Random mode. Call Start to run the entry
// effects of the first mode.
func New(store *state.Store, fetcher Fetcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:   store,
		fetcher: fetcher,
		logger:  logger.Named("controller"),
		mode:    mode.Random,
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() mode.Mode {
	return c.mode
}

// Store returns the store the controller dispatches against.
func (c *Controller) Store() *state.Store {
	return c.store
}

// Start enters m as the first mode and returns the jobs its entry effects
// require.
func (c *Controller) Start(m mode.Mode) []Job {
	c.mode = m
	c.logger.Debug("start", zap.Stringer("mode", m))
	return c.applyEffects(mode.Initial(m))
}

// SwitchMode moves to the given mode, clears the slices the new mode does
// not own and returns any fetch jobs the transition requires. In-flight
// fetches of the previous mode are not canceled; they can only write their
// own slice.
func (c *Controller) SwitchMode(to mode.Mode) []Job {
	next, effects := mode.Transition(c.mode, to)
	if next != c.mode {
		c.logger.Debug("switch mode", zap.Stringer("from", c.mode), zap.Stringer("to", next))
	}
	c.mode = next
	return c.applyEffects(effects)
}

func (c *Controller) applyEffects(effects []mode.Effect) []Job {
	var jobs []Job
	for _, e := range effects {
		switch e {
		case mode.ClearSearch:
			c.store.ClearSearch()
		case mode.ClearSelectedCategory:
			c.store.SetSelectedCategory(nil)
			if c.store.Category().IsLoading {
				c.store.Abandon(state.ChannelCategoryJoke)
			}
		case mode.FetchRandom:
			jobs = append(jobs, c.fetchRandom())
		case mode.LoadCategories:
			if job := c.LoadCategories(); job != nil {
				jobs = append(jobs, job)
			}
		}
	}
	return jobs
}

// AnotherJoke fetches a new joke for the active mode. In Category mode it
// requires a selected category and makes no request otherwise.
func (c *Controller) AnotherJoke() (Job, error) {
	switch c.mode {
	case mode.Random:
		return c.fetchRandom(), nil
	case mode.Category:
		return c.FetchCategoryJoke()
	default:
		return nil, ErrNotFetchable
	}
}

func (c *Controller) fetchRandom() Job {
	seq := c.store.Begin(state.ChannelRandom)
	f := c.fetcher
	return func(ctx context.Context) Outcome {
		joke, err := f.FetchRandom(ctx)
		return Outcome{Channel: state.ChannelRandom, Seq: seq, Joke: joke, Err: err}
	}
}

// SelectCategory selects name and fetches a joke from it.
func (c *Controller) SelectCategory(name string) (Job, error) {
	if c.mode != mode.Category {
		return nil, ErrWrongMode
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoCategorySelected
	}
	c.store.SetSelectedCategory(&name)
	return c.FetchCategoryJoke()
}

// FetchCategoryJoke fetches a joke for the selected category.
func (c *Controller) FetchCategoryJoke() (Job, error) {
	category, ok := c.store.Category().Selected()
	if !ok {
		return nil, ErrNoCategorySelected
	}
	seq := c.store.Begin(state.ChannelCategoryJoke)
	f := c.fetcher
	return func(ctx context.Context) Outcome {
		joke, err := f.FetchByCategory(ctx, category)
		return Outcome{Channel: state.ChannelCategoryJoke, Seq: seq, Joke: joke, Err: err}
	}, nil
}

// LoadCategories loads the category list unless it is already loaded or
// loading. It returns nil when there is nothing to do.
func (c *Controller) LoadCategories() Job {
	cat := c.store.Category()
	if cat.CategoriesLoaded || cat.CategoriesLoading {
		return nil
	}
	return c.ReloadCategories()
}

// ReloadCategories always fetches the category list.
func (c *Controller) ReloadCategories() Job {
	seq := c.store.Begin(state.ChannelCategories)
	f := c.fetcher
	return func(ctx context.Context) Outcome {
		cats, err := f.FetchCategories(ctx)
		return Outcome{Channel: state.ChannelCategories, Seq: seq, Categories: cats, Err: err}
	}
}

// SubmitSearch validates query and starts a search. A blank query sets the
// search error and returns ErrEmptyQuery without any request.
func (c *Controller) SubmitSearch(query string) (Job, error) {
	if c.mode != mode.Search {
		return nil, ErrWrongMode
	}
	if strings.TrimSpace(query) == "" {
		if c.store.Search().IsLoading {
			c.store.Abandon(state.ChannelSearch)
		}
		msg := MsgEmptyQuery
		c.store.SetSearchError(&msg)
		return nil, ErrEmptyQuery
	}

	c.store.SetSearchError(nil)
	c.store.SetSearchQuery(query)
	seq := c.store.Begin(state.ChannelSearch)
	f := c.fetcher
	return func(ctx context.Context) Outcome {
		result, err := f.FetchBySearch(ctx, query)
		return Outcome{Channel: state.ChannelSearch, Seq: seq, Joke: result, Err: err}
	}, nil
}

// Apply writes an Outcome to the store. It returns false when the outcome
// was stale and dropped.
func (c *Controller) Apply(o Outcome) bool {
	log := c.logger.With(zap.Stringer("channel", o.Channel), zap.Uint64("seq", uint64(o.Seq)))

	var applied bool
	if o.Err != nil {
		log.Error("fetch failed", zap.Error(o.Err))
		applied = c.store.Fail(o.Channel, o.Seq, userMessage(o.Channel))
	} else {
		switch o.Channel {
		case state.ChannelRandom:
			applied = c.store.ResolveJoke(o.Seq, o.Joke)
		case state.ChannelCategoryJoke:
			applied = c.store.ResolveCategoryJoke(o.Seq, o.Joke)
		case state.ChannelCategories:
			applied = c.store.ResolveCategories(o.Seq, o.Categories)
		case state.ChannelSearch:
			applied = c.store.ResolveSearch(o.Seq, o.Joke)
		}
	}

	if !applied {
		log.Debug("dropped stale outcome", zap.Uint64("latest", uint64(c.store.Latest(o.Channel))))
	}
	return applied
}

// Run executes job on the calling goroutine and applies its outcome.
func (c *Controller) Run(ctx context.Context, job Job) bool {
	if job == nil {
		return false
	}
	return c.Apply(job(ctx))
}

func userMessage(ch state.Channel) string {
	switch ch {
	case state.ChannelCategories:
		return MsgFetchCategories
	case state.ChannelSearch:
		return MsgSearch
	default:
		return MsgFetchJoke
	}
}
