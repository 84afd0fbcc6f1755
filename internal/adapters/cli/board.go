package cli

import (
	"github.com/spf13/cobra"
)

func newBoardCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Aliases: []string{"ls"},
		Short:   "Show the task board",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := env.loadBoard(cmd.Context())
			if err != nil {
				return err
			}
			return env.printBoard(cmd.OutOrStdout(), s)
		},
	}
}

func newActivitiesCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := env.requireSession(cmd.Context()); err != nil {
				return err
			}
			records, err := env.Board.Activities(cmd.Context())
			if err != nil {
				return err
			}
			return env.printer(cmd.OutOrStdout()).Activities(records)
		},
	}
}
