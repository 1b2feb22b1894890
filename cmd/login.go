package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var token string
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token and start an authenticated session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Initialize(cmd.Context())

			if token == "" {
				return errors.New("token must not be empty")
			}

			user := domain.User{
				domain.UserKeyName:      name,
				domain.UserKeyCreatedAt: time.Now().UTC().Format(time.RFC3339),
				"setup_complete":        true,
			}

			if !app.session.Login(cmd.Context(), token, user) {
				if msg := app.session.Snapshot().Error; msg != "" {
					return errors.New(msg)
				}
				return errors.New("login was rejected")
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token for the todo API")
	cmd.Flags().StringVar(&name, "name", "me", "Display name stored with the session")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
