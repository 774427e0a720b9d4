package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/gojoke/internal/core/controller"
	"github.com/sadopc/gojoke/internal/core/mode"
	"github.com/sadopc/gojoke/internal/jokes"
)

func (c *cli) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random joke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(func(rt *runtime) error {
				if c.jsonOut {
					return c.printRaw(cmd, rt, rt.endpoints.Random)
				}
				rt.runAll(cmd.Context(), rt.ctrl.Start(mode.Random))
				j := rt.ctrl.Store().Joke()
				return printJoke(cmd.OutOrStdout(), j.Joke, j.Error)
			})
		},
	}
}

func (c *cli) categoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Print a random joke from a category",
		Example: `  gojoke category dev
  gojoke category food --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			return c.withRuntime(func(rt *runtime) error {
				if c.jsonOut {
					if name == "" {
						return jokes.ErrEmptyCategory
					}
					return c.printRaw(cmd, rt, rt.endpoints.Category+url.QueryEscape(name))
				}

				rt.runAll(cmd.Context(), rt.ctrl.Start(mode.Category))
				cat := rt.ctrl.Store().Category()
				// An unreachable category list is not fatal; the joke
				// request reports its own failure.
				if cat.CategoriesLoaded && name != "" && !slices.Contains(cat.Categories, name) {
					return fmt.Errorf("unknown category %q (available: %s)",
						name, strings.Join(cat.Categories, ", "))
				}

				job, err := rt.ctrl.SelectCategory(name)
				if err != nil {
					return err
				}
				rt.ctrl.Run(cmd.Context(), job)
				cat = rt.ctrl.Store().Category()
				return printJoke(cmd.OutOrStdout(), cat.Joke, cat.Error)
			})
		},
	}
}

func (c *cli) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the joke categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withRuntime(func(rt *runtime) error {
				if c.jsonOut {
					return c.printRaw(cmd, rt, rt.endpoints.Categories)
				}
				rt.runAll(cmd.Context(), rt.ctrl.Start(mode.Category))
				cat := rt.ctrl.Store().Category()
				if cat.CategoriesError != nil {
					return errors.New(*cat.CategoriesError)
				}
				out := cmd.OutOrStdout()
				for _, name := range cat.Categories {
					fmt.Fprintln(out, name)
				}
				return nil
			})
		},
	}
}

func (c *cli) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Print the first joke matching a query",
		Long: `Search prints the first joke whose text matches the query. Multiple
arguments are joined with spaces.`,
		Example: `  gojoke search onions
  gojoke search "round house"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return c.withRuntime(func(rt *runtime) error {
				if c.jsonOut {
					if strings.TrimSpace(query) == "" {
						return controller.ErrEmptyQuery
					}
					return c.printRaw(cmd, rt, rt.endpoints.Search+url.QueryEscape(query))
				}

				rt.runAll(cmd.Context(), rt.ctrl.Start(mode.Search))
				job, err := rt.ctrl.SubmitSearch(query)
				if err != nil {
					return err
				}
				rt.ctrl.Run(cmd.Context(), job)
				s := rt.ctrl.Store().Search()
				return printJoke(cmd.OutOrStdout(), s.Result, s.Error)
			})
		},
	}
}

// printJoke writes joke, or turns the slice's user-facing error into the
// command's error so the process exits non-zero.
func printJoke(w io.Writer, joke string, errMsg *string) error {
	if errMsg != nil {
		return errors.New(*errMsg)
	}
	_, err := fmt.Fprintln(w, joke)
	return err
}

func (c *cli) printRaw(cmd *cobra.Command, rt *runtime, endpoint string) error {
	body, err := rt.client.Get(cmd.Context(), endpoint)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return writeJSON(out, body, isTerminal(out))
}
