package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := env.Sessions.Ready(cmd.Context())
			if err != nil {
				return err
			}
			return env.printer(cmd.OutOrStdout()).Header(st.Session)
		},
	}
}

func newLoginCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "login <id-token>",
		Short: "Sign in with an identity provider ID token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := env.Identity.SignIn(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", s.Name())
			return err
		},
	}
}

func newLogoutCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored ID token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env.Identity.SignOut(cmd.Context())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}
