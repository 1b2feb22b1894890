package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored token and user data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.session.Initialize(cmd.Context())

			if !app.session.Logout(cmd.Context()) {
				if msg := app.session.Snapshot().Error; msg != "" {
					return errors.New(msg)
				}
				return errors.New("logout failed")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return err
		},
	}
}
