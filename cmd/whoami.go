package cmd

import (
	"fmt"

	tasklistrender "github.com/bnema/todo-tasks-cli/internal/adapters/render/tasklist"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.session.Initialize(cmd.Context())

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, tasklistrender.RenderSession(session)); err != nil {
				return err
			}

			apiKey := "not configured"
			if app.gateway.Configured() {
				apiKey = "configured"
			}
			_, err := fmt.Fprintf(out, "environment: %s\napi key: %s\n", app.config.Environment, apiKey)
			return err
		},
	}
}
