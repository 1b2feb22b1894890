package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newEditCmd(app *app) *cobra.Command {
	var push bool

	cmd := &cobra.Command{
		Use:   "edit <id> <text>...",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			id := domain.TaskID(args[0])
			text := strings.Join(args[1:], " ")

			ok, err := app.tasks.Edit(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			if !ok {
				if _, found := app.tasks.Get(id); !found {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "No task with id %s\n", id)
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Nothing to save: replacement text is empty")
				return err
			}

			task, _ := app.tasks.Get(id)
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated %s to %q\n", id, task.Text); err != nil {
				return err
			}

			if !push {
				return nil
			}
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if _, err := app.tasks.PushUpdate(cmd.Context(), id, domain.PatchText(task.Text)); err != nil {
				return syncError(err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s to the todo API\n", id)
			return err
		},
	}

	cmd.Flags().BoolVar(&push, "push", false, "also send the new text to the todo API")

	return cmd
}
