package main

import (
	"context"
	"fmt"

	"github.com/sadopc/gojoke/internal/api"
	"github.com/sadopc/gojoke/internal/core/controller"
	"github.com/sadopc/gojoke/internal/core/state"
	"github.com/sadopc/gojoke/internal/core/storage"
	"github.com/sadopc/gojoke/internal/jokes"
)

// runtime is the wired object graph shared by the browser and the
// one-shot commands.
type runtime struct {
	tokens    *storage.Store
	client    *api.Client
	endpoints jokes.Endpoints
	ctrl      *controller.Controller
}

func (c *cli) openTokens() (*storage.Store, error) {
	path := c.cfg.StoragePath
	if path == "" {
		path = ":memory:"
	}
	tokens, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening token store: %w", err)
	}
	return tokens, nil
}

func (c *cli) newRuntime() (*runtime, error) {
	tokens, err := c.openTokens()
	if err != nil {
		return nil, err
	}

	client, err := api.New(api.Options{
		BaseURL: c.cfg.API.BaseURL,
		Timeout: c.cfg.API.Timeout,
		Proxy:   c.cfg.API.Proxy,
		TLS: api.TLSOptions{
			CAFile:   c.cfg.API.CAFile,
			CertFile: c.cfg.API.CertFile,
			KeyFile:  c.cfg.API.KeyFile,
			Insecure: c.cfg.API.TLSInsecure,
		},
		Tokens: tokens,
		Logger: c.logger,
	})
	if err != nil {
		tokens.Close()
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	endpoints := jokes.EndpointsFrom(c.cfg.API)
	c.logger.Sugar().Debugf("endpoints: %s", endpoints)

	svc := jokes.NewService(client, endpoints, c.logger)
	return &runtime{
		tokens:    tokens,
		client:    client,
		endpoints: endpoints,
		ctrl:      controller.New(state.NewStore(), svc, c.logger),
	}, nil
}

func (c *cli) withRuntime(fn func(rt *runtime) error) error {
	rt, err := c.newRuntime()
	if err != nil {
		return err
	}
	defer rt.tokens.Close()
	return fn(rt)
}

// runAll runs jobs inline, in order.
func (rt *runtime) runAll(ctx context.Context, jobs []controller.Job) {
	for _, job := range jobs {
		rt.ctrl.Run(ctx, job)
	}
}
