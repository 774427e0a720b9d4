package app

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sadopc/gojoke/internal/config"
	"github.com/sadopc/gojoke/internal/core/controller"
	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/core/state"
	"github.com/sadopc/gojoke/internal/ui/components"
	"github.com/sadopc/gojoke/internal/ui/layout"
	"github.com/sadopc/gojoke/internal/ui/msgs"
	"github.com/sadopc/gojoke/internal/ui/panels/joke"
	"github.com/sadopc/gojoke/internal/ui/panels/search"
	"github.com/sadopc/gojoke/internal/ui/panels/sidebar"
	"github.com/sadopc/gojoke/internal/ui/theme"
)

// Options configures the App.
type Options struct {
	Controller *controller.Controller
	Config     config.Config
	Logger     *zap.Logger

	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
	// Now is the clock used for "updated ago". Defaults to time.Now.
	Now func() time.Time
}

// updateTracker records when each slice last changed. It is shared by all
// copies of the App value.
type updateTracker struct {
	at  [3]time.Time
	now func() time.Time
}

// touch records arrivals of new data only; starting or abandoning a fetch
// does not count as an update.
func (u *updateTracker) touch(c state.Change) {
	if c.Data && int(c.Slice) < len(u.at) {
		u.at[c.Slice] = u.now()
	}
}

// App is the root Bubble Tea model.
type App struct {
	sidebar sidebar.Model
	joke    joke.Model
	search  search.Model

	modeBar   components.ModeBar
	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast

	ctrl        *controller.Controller
	store       *state.Store
	logger      *zap.Logger
	copy        func(string) error
	updated     *updateTracker
	unsubscribe func()
	startJobs   []controller.Job

	focus  msgs.PanelFocus
	layout layout.PanelLayout
	keys   KeyMap
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates the App and enters the configured start mode. The initial
// fetches run from Init.
func New(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("tui")

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	t := theme.Resolve(opts.Config.Theme, theme.CustomDir(config.Dir()))
	s := theme.NewStyles(t)

	start, err := mode.Parse(opts.Config.DefaultMode)
	if err != nil {
		logger.Warn("unknown default mode, using random", zap.String("mode", opts.Config.DefaultMode))
		start = mode.Random
	}

	store := opts.Controller.Store()
	tracker := &updateTracker{now: now}

	a := App{
		sidebar: sidebar.New(s),
		joke:    joke.New(s),
		search:  search.New(s),

		modeBar:   components.NewModeBar(s),
		statusBar: components.NewStatusBar(s),
		help:      components.NewHelp(s),
		toast:     components.NewToast(s),

		ctrl:        opts.Controller,
		store:       store,
		logger:      logger,
		copy:        copyFn,
		updated:     tracker,
		unsubscribe: store.Subscribe(tracker.touch),

		keys:   DefaultKeyMap(),
		styles: s,
	}

	a.startJobs = a.ctrl.Start(start)
	a.enterMode(start)
	a.sync()
	return a
}

// Close detaches the App from the store.
func (a App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// Mode returns the active mode.
func (a App) Mode() mode.Mode {
	return a.ctrl.Mode()
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.joke.Init(), a.sidebar.Init()}
	for _, job := range a.startJobs {
		cmds = append(cmds, a.runJob(job))
	}
	return tea.Batch(cmds...)
}

// runJob runs a fetch job off the event loop and delivers its outcome as a
// FetchDoneMsg.
func (a App) runJob(job controller.Job) tea.Cmd {
	if job == nil {
		return nil
	}
	return func() tea.Msg {
		return msgs.FetchDoneMsg{Outcome: job(context.Background())}
	}
}

func (a App) runJobs(jobs []controller.Job) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(jobs))
	for _, job := range jobs {
		cmds = append(cmds, a.runJob(job))
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	a, cmd := a.update(msg)
	a.sync()
	return a, cmd
}

func (a App) update(msg tea.Msg) (App, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.SwitchModeMsg:
		return a.switchMode(msg.Mode)

	case msgs.FetchDoneMsg:
		if !a.ctrl.Apply(msg.Outcome) {
			a.logger.Debug("ignored stale fetch", zap.Stringer("channel", msg.Outcome.Channel))
		}
		return a, nil

	case msgs.AnotherJokeMsg:
		job, err := a.ctrl.AnotherJoke()
		switch {
		case err == nil:
			return a, a.runJob(job)
		case errors.Is(err, controller.ErrNoCategorySelected):
			return a, a.statusBar.SetMessage("Select a category first", 2*time.Second)
		case errors.Is(err, controller.ErrNotFetchable):
			return a, a.statusBar.SetMessage("Press / to search", 2*time.Second)
		}
		return a, nil

	case msgs.CategorySelectedMsg:
		job, err := a.ctrl.SelectCategory(msg.Name)
		if err != nil {
			a.logger.Debug("category not selected", zap.Error(err))
			return a, nil
		}
		return a, a.runJob(job)

	case msgs.SearchSubmittedMsg:
		// Validation errors are already in the store.
		job, err := a.ctrl.SubmitSearch(msg.Query)
		if err != nil {
			return a, nil
		}
		return a, a.runJob(job)

	case msgs.ReloadCategoriesMsg:
		if a.ctrl.Mode() != mode.Category {
			return a, nil
		}
		return a, a.runJob(a.ctrl.ReloadCategories())

	case msgs.CopyJokeMsg:
		return a.copyJoke()

	case msgs.FocusMsg:
		return a, a.setFocus(msg.Panel)

	case msgs.ShowHelpMsg:
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil

	case msgs.StatusMsg:
		return a, a.statusBar.SetMessage(msg.Text, msg.Duration)

	case msgs.ToastMsg:
		return a, a.toast.Show(msg.Text, msg.IsError, msg.Duration)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	cmds = append(cmds, cmd)
	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)
	a.joke, cmd = a.joke.Update(msg)
	cmds = append(cmds, cmd)
	a.sidebar, cmd = a.sidebar.Update(msg)
	cmds = append(cmds, cmd)
	a.search, cmd = a.search.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

func (a App) switchMode(to mode.Mode) (App, tea.Cmd) {
	from := a.ctrl.Mode()
	jobs := a.ctrl.SwitchMode(to)
	if from != to {
		a.logger.Debug("mode switched", zap.Stringer("from", from), zap.Stringer("to", to))
	}
	focusCmd := a.enterMode(to)
	return a, tea.Batch(a.runJobs(jobs), focusCmd)
}

// enterMode updates the chrome for md and picks the default focus.
func (a *App) enterMode(md mode.Mode) tea.Cmd {
	a.modeBar.SetActive(md)
	a.statusBar.SetMode(md)
	if md != mode.Search {
		a.search.Reset()
		a.search.Blur()
	}
	a.relayout()

	switch md {
	case mode.Category:
		return a.setFocus(msgs.FocusSidebar)
	case mode.Search:
		return a.setFocus(msgs.FocusSearch)
	default:
		return a.setFocus(msgs.FocusJoke)
	}
}

func (a *App) setFocus(p msgs.PanelFocus) tea.Cmd {
	a.focus = p
	a.sidebar.SetFocused(p == msgs.FocusSidebar)
	a.joke.SetFocused(p == msgs.FocusJoke)
	a.statusBar.SetFocus(p)

	if p == msgs.FocusSearch {
		return a.search.Focus()
	}
	a.search.Blur()
	return nil
}

func (a *App) cycleFocus() tea.Cmd {
	switch a.ctrl.Mode() {
	case mode.Category:
		if a.focus == msgs.FocusSidebar {
			return a.setFocus(msgs.FocusJoke)
		}
		return a.setFocus(msgs.FocusSidebar)
	case mode.Search:
		if a.focus == msgs.FocusSearch {
			return a.setFocus(msgs.FocusJoke)
		}
		return a.setFocus(msgs.FocusSearch)
	}
	return nil
}

func (a *App) relayout() {
	a.layout = layout.Calculate(a.width, a.height, a.ctrl.Mode() == mode.Category)
	l := a.layout

	mainH := l.MainHeight
	if a.ctrl.Mode() == mode.Search {
		mainH -= searchInputHeight
	}
	a.sidebar.SetSize(l.SidebarWidth, l.SidebarHeight)
	a.joke.SetSize(l.MainWidth, max(3, mainH))
	a.search.SetWidth(l.MainWidth)
	a.modeBar.SetWidth(a.width)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

func (a App) copyJoke() (App, tea.Cmd) {
	text := a.joke.Card().Joke
	if text == "" {
		return a, a.toast.Show("Nothing to copy", true, 2*time.Second)
	}
	if err := a.copy(text); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		return a, a.toast.Show("Clipboard unavailable", true, 2*time.Second)
	}
	return a, a.toast.Show("Copied to clipboard", false, 2*time.Second)
}

// sync copies store snapshots into the panels.
func (a *App) sync() {
	md := a.ctrl.Mode()
	cat := a.store.Category()
	a.sidebar.Sync(cat)

	card := cardFor(md, a.store.Joke(), cat, a.store.Search())
	a.joke.SetCard(card)

	a.statusBar.SetLoading(card.Loading || (md == mode.Category && cat.CategoriesLoading))
	a.statusBar.SetUpdated(a.updated.at[sliceFor(md)])
}

func sliceFor(md mode.Mode) state.SliceID {
	switch md {
	case mode.Category:
		return state.SliceCategory
	case mode.Search:
		return state.SliceSearch
	default:
		return state.SliceJoke
	}
}

// cardFor builds the joke card for the active mode.
func cardFor(md mode.Mode, j state.JokeSlice, c state.CategorySlice, s state.SearchSlice) joke.Card {
	switch md {
	case mode.Category:
		name, ok := c.Selected()
		if !ok {
			return joke.Card{Title: "Category", Hint: "Select a category from the list"}
		}
		return joke.Card{
			Title:   "Category: " + name,
			Joke:    c.Joke,
			Loading: c.IsLoading,
			Error:   state.Deref(c.Error),
		}
	case mode.Search:
		title := "Search"
		if s.Query != "" {
			title = `Search: "` + s.Query + `"`
		}
		return joke.Card{
			Title:   title,
			Joke:    s.Result,
			Loading: s.IsLoading,
			Error:   state.Deref(s.Error),
			Hint:    "Type a query and press enter",
		}
	default:
		return joke.Card{
			Title:   "Random joke",
			Joke:    j.Joke,
			Loading: j.IsLoading,
			Error:   state.Deref(j.Error),
		}
	}
}
