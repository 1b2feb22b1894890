package cmd

import (
	"encoding/json"
	"fmt"

	tasklistrender "github.com/bnema/todo-tasks-cli/internal/adapters/render/tasklist"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			tasks := app.tasks.Tasks()

			if asJSON {
				encoded, err := json.MarshalIndent(tasks, "", "  ")
				if err != nil {
					return fmt.Errorf("encode tasks: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return err
			}

			rendered, err := app.renderTasks(tasks, tasklistrender.RenderOptions{ShowIDs: true})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
