package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/gojoke/internal/core/storage"
)

func (c *cli) tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the bearer token sent with API requests",
		Long: `The token is stored in the local data directory and sent as an
"Authorization: Bearer" header when set. The public joke API needs none.`,
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTokens(func(tokens *storage.Store) error {
				token, err := tokens.Token()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				switch {
				case token == "":
					fmt.Fprintln(out, "No token set.")
				case reveal:
					fmt.Fprintln(out, token)
				default:
					fmt.Fprintln(out, maskToken(token))
				}
				return nil
			})
		},
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "Print the full token")

	set := &cobra.Command{
		Use:   "set <token>",
		Short: "Store a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			if token == "" {
				return errors.New("token must not be empty")
			}
			return c.withTokens(func(tokens *storage.Store) error {
				if err := tokens.Set(storage.TokenKey, token); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Token saved.")
				return nil
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTokens(func(tokens *storage.Store) error {
				if err := tokens.Delete(storage.TokenKey); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Token cleared.")
				return nil
			})
		},
	}

	cmd.AddCommand(show, set, clearCmd)
	return cmd
}

func (c *cli) withTokens(fn func(tokens *storage.Store) error) error {
	tokens, err := c.openTokens()
	if err != nil {
		return err
	}
	defer tokens.Close()
	return fn(tokens)
}

// maskToken keeps the first and last four characters of long tokens.
func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
