package jokes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/gojoke/internal/api"
	"github.com/sadopc/gojoke/internal/config"
	"github.com/sadopc/gojoke/internal/mock"
)

func newService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.New(api.Options{BaseURL: server.URL})
	require.NoError(t, err)
	return NewService(client, EndpointsFrom(config.DefaultAPIConfig()), nil)
}

func TestFetchRandom(t *testing.T) {
	srv := mock.New(mock.WithJokes([]mock.Joke{{Value: "Chuck Norris counted to infinity twice."}}))
	s := newService(t, srv.Handler())

	joke, err := s.FetchRandom(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Chuck Norris counted to infinity twice.", joke)
}

func TestFetchByCategory(t *testing.T) {
	srv := mock.New(mock.WithJokes([]mock.Joke{
		{Value: "plain"},
		{Value: "Chuck Norris can make onions cry.", Categories: []string{"food"}},
	}))
	s := newService(t, srv.Handler())

	joke, err := s.FetchByCategory(context.Background(), "food")
	require.NoError(t, err)
	assert.Equal(t, "Chuck Norris can make onions cry.", joke)
}

func TestFetchByCategoryEscapesName(t *testing.T) {
	var gotQuery string
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("category")
		w.Write([]byte(`{"value":"ok"}`))
	}))

	_, err := s.FetchByCategory(context.Background(), "rock & roll")
	require.NoError(t, err)
	assert.Equal(t, "rock & roll", gotQuery)
}

func TestFetchByCategoryRequiresCategory(t *testing.T) {
	var calls atomic.Int32
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	for _, c := range []string{"", "   "} {
		_, err := s.FetchByCategory(context.Background(), c)
		assert.ErrorIs(t, err, ErrEmptyCategory)
	}
	assert.Zero(t, calls.Load(), "no request may be sent without a category")
}

func TestFetchBySearch(t *testing.T) {
	srv := mock.New(mock.WithJokes([]mock.Joke{
		{Value: "Chuck Norris can divide by zero."},
		{Value: "Chuck Norris can make onions cry."},
	}))
	s := newService(t, srv.Handler())

	joke, err := s.FetchBySearch(context.Background(), "onions")
	require.NoError(t, err)
	assert.Equal(t, "Chuck Norris can make onions cry.", joke)
}

func TestFetchBySearchNoResultsIsSentinel(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":0,"result":[]}`))
	}))

	joke, err := s.FetchBySearch(context.Background(), "zebra")
	require.NoError(t, err)
	assert.Equal(t, NoJokeFound, joke)
	assert.Equal(t, "No joke found with that query.", joke)
}

func TestFetchCategoriesPreservesOrder(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["travel","animal","dev"]`))
	}))

	cats, err := s.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"travel", "animal", "dev"}, cats)
}

func TestFetchCategoriesConcurrentCallers(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Write([]byte(`["dev"]`))
	}))

	var wg sync.WaitGroup
	results := make([][]string, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.FetchCategories(context.Background())
		}(i)
	}
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	// Callers that arrive while the first request is in flight share it.
	assert.LessOrEqual(t, calls.Load(), int32(len(results)))
	for _, r := range results {
		assert.Equal(t, []string{"dev"}, r)
	}
	results[0][0] = "mutated"
	assert.Equal(t, "dev", results[1][0], "callers must not share the backing array")
}

func TestFetchCategoriesCallerCancelDoesNotAffectOthers(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		w.Write([]byte(`["dev","food"]`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := s.FetchCategories(ctx)
		first <- err
	}()
	for calls.Load() == 0 {
		runtime.Gosched()
	}
	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	// The shared request is still in flight; a live caller joins it.
	second := make(chan []string, 1)
	go func() {
		cats, err := s.FetchCategories(context.Background())
		assert.NoError(t, err)
		second <- cats
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)

	assert.Equal(t, []string{"dev", "food"}, <-second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	s := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	ops := map[string]func() error{
		"random": func() error { _, err := s.FetchRandom(context.Background()); return err },
		"category": func() error {
			_, err := s.FetchByCategory(context.Background(), "food")
			return err
		},
		"search": func() error {
			_, err := s.FetchBySearch(context.Background(), "chuck")
			return err
		},
		"categories": func() error { _, err := s.FetchCategories(context.Background()); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, api.KindResponse, apiErr.Kind)
			assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
		})
	}
}
