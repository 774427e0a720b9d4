// Package jokes maps the joke API endpoints to plain joke strings.
package jokes

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sadopc/gojoke/internal/config"
)

// NoJokeFound is returned by FetchBySearch when the search has no results.
// It is a successful result, not an error.
const NoJokeFound = "No joke found with that query."

// ErrEmptyCategory is returned when a category fetch is attempted without a
// category. No request is made.
var ErrEmptyCategory = errors.New("category is required")

// Getter is the subset of api.Client the service needs.
type Getter interface {
	GetJSON(ctx context.Context, endpoint string, v any) error
}

// Endpoints holds the endpoint paths. Category and Search are prefixes the
// escaped argument is appended to.
type Endpoints struct {
	Random     string
	Category   string
	Search     string
	Categories string
}

// EndpointsFrom builds Endpoints from the API config.
func EndpointsFrom(cfg config.APIConfig) Endpoints {
	return Endpoints{
		Random:     cfg.EndpointRandom,
		Category:   cfg.EndpointCategory,
		Search:     cfg.EndpointSearch,
		Categories: cfg.EndpointCategories,
	}
}

// Joke is the API's joke object. Only Value is used by the UI.
type Joke struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	URL        string   `json:"url"`
	IconURL    string   `json:"icon_url"`
	Categories []string `json:"categories"`
	CreatedAt  string   `json:"created_at"`
}

type searchResponse struct {
	Total  int    `json:"total"`
	Result []Joke `json:"result"`
}

// Service implements the four joke fetch operations. It never retries.
type Service struct {
	api       Getter
	endpoints Endpoints
	logger    *zap.Logger

	categories singleflight.Group
}

// NewService creates a Service.
func NewService(api Getter, endpoints Endpoints, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:       api,
		endpoints: endpoints,
		logger:    logger.Named("jokes"),
	}
}

// FetchRandom returns a random joke.
func (s *Service) FetchRandom(ctx context.Context) (string, error) {
	var j Joke
	if err := s.api.GetJSON(ctx, s.endpoints.Random, &j); err != nil {
		s.logger.Error("fetching random joke", zap.Error(err))
		return "", err
	}
	return j.Value, nil
}

// FetchByCategory returns a random joke from category.
func (s *Service) FetchByCategory(ctx context.Context, category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", ErrEmptyCategory
	}
	var j Joke
	if err := s.api.GetJSON(ctx, s.endpoints.Category+url.QueryEscape(category), &j); err != nil {
		s.logger.Error("fetching joke by category", zap.String("category", category), zap.Error(err))
		return "", err
	}
	return j.Value, nil
}

// FetchBySearch returns the first joke matching query, or NoJokeFound.
func (s *Service) FetchBySearch(ctx context.Context, query string) (string, error) {
	var resp searchResponse
	if err := s.api.GetJSON(ctx, s.endpoints.Search+url.QueryEscape(query), &resp); err != nil {
		s.logger.Error("searching for joke", zap.String("query", query), zap.Error(err))
		return "", err
	}
	if len(resp.Result) == 0 {
		return NoJokeFound, nil
	}
	return resp.Result[0].Value, nil
}

// FetchCategories returns the category list in server order. Concurrent
// calls share a single request. The shared request is not canceled by any
// one caller; each caller stops waiting when its own ctx is done.
func (s *Service) FetchCategories(ctx context.Context) ([]string, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.categories.DoChan("categories", func() (any, error) {
		var cats []string
		if err := s.api.GetJSON(shared, s.endpoints.Categories, &cats); err != nil {
			return nil, err
		}
		return cats, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		s.logger.Error("fetching joke categories", zap.Error(res.Err))
		return nil, res.Err
	}
	cats := res.Val.([]string)
	out := make([]string, len(cats))
	copy(out, cats)
	return out, nil
}

// String is used in log fields.
func (e Endpoints) String() string {
	return fmt.Sprintf("random=%s category=%s search=%s categories=%s",
		e.Random, e.Category, e.Search, e.Categories)
}
