package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "td",
		Short:         "Todo Tasks CLI (td): a local task list behind a token login",
		Long:          "td keeps a task list on your machine, gates remote sync behind a stored bearer token, and talks to the todo API for pull/push.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newAddCmd(app),
		newDoneCmd(app),
		newRmCmd(app),
		newEditCmd(app),
		newListCmd(app),
		newSyncCmd(app),
	)

	return rootCmd
}
