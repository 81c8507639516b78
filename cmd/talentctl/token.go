package main

import (
	"fmt"
	"strings"

	"talentx/internal/domain/user"
	"talentx/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		role   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed bearer token for a user id and role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(strings.TrimSpace(userID))
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			r := user.Role(strings.ToUpper(strings.TrimSpace(role)))
			if !r.Valid() {
				return fmt.Errorf("invalid --role %q: want EMPLOYER or TALENT", role)
			}

			cfg, _, err := opts.load()
			if err != nil {
				return err
			}
			svc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
			tok, err := svc.Issue(user.Identity{ID: id, Role: r})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (UUID)")
	cmd.Flags().StringVar(&role, "role", "", "EMPLOYER or TALENT")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
