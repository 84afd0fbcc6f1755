package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newServeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over a local HTTP API",
		Long: `Runs the board controller behind a JSON API until interrupted.
Board changes made through the API are kept in sync with the task API
in the same way as the terminal commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.Serve == nil {
				return errors.New("serve is not available in this build")
			}
			return env.Serve(cmd.Context())
		},
	}
}
