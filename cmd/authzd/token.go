package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/roles"
	"github.com/wikiai/kbaccess/pkg/validator"
)

func tokenCmd(load func() (Config, error)) *cobra.Command {
	var userID, role, org string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.Apply(validator.ValidRole("role", role, roles.Builtin().Keys())); err != nil {
				return fmt.Errorf("unknown role %q: %w", role, err)
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			tokens, err := jwt.New(cfg.JWT)
			if err != nil {
				return fmt.Errorf("jwt: %w", err)
			}
			signed, claims, err := tokens.Issue(userID, role, org)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			fmt.Fprintf(cmd.ErrOrStderr(), "jti=%s expires=%s\n", claims.ID, claims.ExpiresAtTime().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "subject user id")
	cmd.Flags().StringVar(&role, "role", roles.Viewer, "role name")
	cmd.Flags().StringVar(&org, "org", "", "organization id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
