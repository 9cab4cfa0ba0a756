package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(opts *RootOptions) *cobra.Command {
	var displayName string

	cmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := opts.apiClient()
			if err := api.Register(cmd.Context(), args[0], args[1], displayName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "display name (defaults to the username)")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Sign in and cache the session token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := opts.apiClient()
			res, err := api.Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := opts.writeToken(res.Token); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", res.User.DisplayName)
			return nil
		},
	}
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the cached session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api := opts.apiClient()
			if err := api.Logout(cmd.Context()); err != nil {
				return err
			}
			opts.clearToken()
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}
