package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blogicum/internal/identity"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create USERNAME",
	Short: "Register a user",
	Args:  cobra.ExactArgs(1),
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, args []string) error {
		user, err := e.manager.CreateUser(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "user %q created (id %d)\n", user.Username, user.ID)
		return nil
	}),
}

// tokenCmd prints a bearer token for an existing user.
var tokenCmd = &cobra.Command{
	Use:   "token USERNAME",
	Short: "Issue a bearer token for a user",
	Long: `Issue a bearer token for an existing user, signed with [Auth] Secret.

Examples:
  curl -H "Authorization: Bearer $(blogctl token alice)" localhost:3000/api/v1/posts`,
	Args: cobra.ExactArgs(1),
	RunE: withEnv(func(ctx context.Context, e *env, cmd *cobra.Command, args []string) error {
		user, err := e.manager.UserByUsername(ctx, args[0])
		if err != nil {
			return fmt.Errorf("user %q: %w", args[0], err)
		}

		provider := identity.NewProvider(e.cfg.Auth.Secret, e.cfg.Auth.TokenTTL.Duration)
		token, err := provider.Issue(identity.Viewer{UserID: user.ID, Username: user.Username})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	}),
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd, tokenCmd)
}
