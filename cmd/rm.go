package cmd

import (
	"fmt"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRmCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			id := domain.TaskID(args[0])
			ok, err := app.tasks.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No task with id %s\n", id)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return err
		},
	}
}
