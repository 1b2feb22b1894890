package cmd

import (
	"fmt"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDoneCmd(app *app) *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			id := domain.TaskID(args[0])
			ok, err := app.tasks.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "No task with id %s\n", id)
				return err
			}

			task, _ := app.tasks.Get(id)
			state := "pending"
			if task.Done {
				state = "done"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Marked %q as %s\n", task.Text, state); err != nil {
				return err
			}

			if !push {
				return nil
			}
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if _, err := app.tasks.PushUpdate(cmd.Context(), id, domain.PatchDone(task.Done)); err != nil {
				return syncError(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s to the todo API\n", id)
			return err
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "also send the new completion state to the todo API")

	return cmd
}
