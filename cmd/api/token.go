package main

import (
	"fmt"
	"time"

	mw "peerlend-backend/internal/adapter/middleware"

	"github.com/spf13/cobra"
)

// tokenCmd mints a bearer token with the configured secret, for local use.
func tokenCmd() *cobra.Command {
	var (
		userType string
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:     "token [user-id]",
		Short:   "Mint a bearer token for a user",
		Args:    cobra.ExactArgs(1),
		Example: "  peerlend token 0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a --type lender --ttl 2h",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tm := mw.NewTokenManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret)
			tok, err := tm.Mint(mw.Principal{UserID: args[0], Type: mw.UserType(userType)}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVarP(&userType, "type", "t", string(mw.UserLender), "user type (lender, business)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
