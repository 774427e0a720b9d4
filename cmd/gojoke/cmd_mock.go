package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/gojoke/internal/mock"
)

type mockFlags struct {
	port       int
	latency    time.Duration
	errorRate  float64
	corsOrigin string
}

func (f mockFlags) validate() error {
	if f.errorRate < 0 || f.errorRate > 1 {
		return errors.New("error-rate must be between 0.0 and 1.0")
	}
	if f.port < 0 || f.port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}
	return nil
}

func (f mockFlags) options() []mock.Option {
	opts := []mock.Option{mock.WithPort(f.port)}
	if f.latency > 0 {
		opts = append(opts, mock.WithLatency(f.latency))
	}
	if f.errorRate > 0 {
		opts = append(opts, mock.WithErrorRate(f.errorRate))
	}
	if f.corsOrigin != "*" {
		opts = append(opts, mock.WithCORSOrigin(f.corsOrigin))
	}
	return opts
}

func (c *cli) mockCmd() *cobra.Command {
	var f mockFlags
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve a local mock of the joke API",
		Long: `Start a local server with the same endpoints as the joke API, backed by
a built-in set of jokes. Point the browser at it with
GOJOKE_API_URL_BASE=http://localhost:<port>.`,
		Example: `  gojoke mock
  gojoke mock --port 3000
  gojoke mock --latency 200ms
  gojoke mock --error-rate 0.1
  gojoke mock --cors-origin https://myapp.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}

			opts := append(f.options(), mock.WithLogger(c.logger))
			srv := mock.New(opts...)

			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "Mock joke API on http://localhost:%d\n", srv.Port())
			for _, route := range srv.Routes() {
				fmt.Fprintf(errOut, "  %s\n", route)
			}
			if f.latency > 0 {
				fmt.Fprintf(errOut, "Artificial latency: %s\n", f.latency)
			}
			if f.errorRate > 0 {
				fmt.Fprintf(errOut, "Error rate: %.0f%%\n", f.errorRate*100)
			}

			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&f.port, "port", 8080, "Port to listen on")
	cmd.Flags().DurationVar(&f.latency, "latency", 0, "Artificial response latency (e.g. 200ms, 1s)")
	cmd.Flags().Float64Var(&f.errorRate, "error-rate", 0, "Random error rate (0.0-1.0)")
	cmd.Flags().StringVar(&f.corsOrigin, "cors-origin", "*", "Access-Control-Allow-Origin header value")
	return cmd
}
