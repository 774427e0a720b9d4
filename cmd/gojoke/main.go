package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sadopc/gojoke/internal/app"
	"github.com/sadopc/gojoke/internal/config"
	"github.com/sadopc/gojoke/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// cli carries the persistent flags and the state built in PersistentPreRunE.
type cli struct {
	verbose bool
	jsonOut bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gojoke",
		Short: "Browse Chuck Norris jokes from the terminal",
		Long: `gojoke is a terminal joke browser with three modes: a random joke,
a random joke from a chosen category, and the first joke matching a search.

Run without arguments to start the interactive browser, or use one of the
subcommands to print a single joke.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: c.runTUI,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Print the raw API response as JSON")

	root.AddCommand(
		c.randomCmd(),
		c.categoryCmd(),
		c.categoriesCmd(),
		c.searchCmd(),
		c.tokenCmd(),
		c.mockCmd(),
		completionCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the config and builds the logger. The interactive browser
// logs to a file so log lines cannot corrupt the screen; subcommands log
// to stderr.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	c.cfg = config.Load()

	var err error
	if cmd == cmd.Root() {
		if c.cfg.LogFile == "" {
			c.logger = zap.NewNop()
		} else {
			c.logger, err = logging.NewFile(c.cfg.LogFile, c.cfg.LogLevel)
		}
	} else {
		c.logger, err = logging.NewConsole(c.verbose)
	}
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	if _, err := config.LoadAPIFromEnv(); err != nil {
		c.logger.Warn("ignoring invalid GOJOKE_* environment, using defaults", zap.Error(err))
	}
	c.logger.Debug("config loaded",
		zap.String("base_url", c.cfg.API.BaseURL),
		zap.Duration("timeout", c.cfg.API.Timeout),
		zap.String("storage", c.cfg.StoragePath),
	)
	return nil
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	return c.withRuntime(func(rt *runtime) error {
		model := app.New(app.Options{
			Controller: rt.ctrl,
			Config:     c.cfg,
			Logger:     c.logger,
			Clipboard:  clipboard.WriteAll,
		})

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		final, err := p.Run()
		if m, ok := final.(app.App); ok {
			m.Close()
		}
		if err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	})
}
