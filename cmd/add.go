package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			task, ok, err := app.tasks.Add(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Nothing to add: task text is empty")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", task.Text, task.ID)
			return err
		},
	}
}
