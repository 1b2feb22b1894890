package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/todo-tasks-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSyncCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the task list with the todo API",
	}

	cmd.AddCommand(newSyncPullCmd(app), newSyncPushCmd(app))

	return cmd
}

func newSyncPullCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the local list with the remote collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			var pulled []domain.Task
			err := runSyncSpinner(cmd.Context(), cmd.ErrOrStderr(), "Pulling tasks...", func() error {
				var pullErr error
				pulled, pullErr = app.tasks.Pull(cmd.Context())
				return pullErr
			})
			if err != nil {
				return syncError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d tasks\n", len(pulled))
			return err
		},
	}
}

func newSyncPushCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Batch-create the local tasks remotely",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if err := app.tasks.Load(cmd.Context()); err != nil {
				return err
			}

			var created []domain.Task
			err := runSyncSpinner(cmd.Context(), cmd.ErrOrStderr(), "Pushing tasks...", func() error {
				var pushErr error
				created, pushErr = app.tasks.Push(cmd.Context())
				return pushErr
			})
			if err != nil {
				return syncError(err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d tasks\n", len(created))
			return err
		},
	}
}

func requireSession(cmd *cobra.Command, app *app) error {
	app.session.Initialize(cmd.Context())

	if err := app.session.RequireAuthenticated(); err != nil {
		return fmt.Errorf("talking to the todo API needs a session, run 'td login' first: %w", err)
	}

	return nil
}

func syncError(err error) error {
	if errors.Is(err, domain.ErrAuthentication) {
		return errors.New("authentication rejected: the stored token was cleared, run 'td login' again")
	}

	return err
}
