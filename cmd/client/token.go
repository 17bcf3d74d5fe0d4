package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-rsa-vault/internal/config"
	"github.com/MKhiriev/go-rsa-vault/internal/service"
	"github.com/MKhiriev/go-rsa-vault/models"
	"github.com/spf13/cobra"
)

var (
	errSubjectRequired = errors.New("--subject is required")
	errSignKeyRequired = errors.New("--sign-key or APP_TOKEN_SIGN_KEY is required")
)

// tokenCmd mints a bearer token locally with the server's signing secret.
// It is meant for operators and tests; it never contacts the server.
func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject  string
		email    string
		signKey  string
		issuer   string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for jwt auth mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return errSubjectRequired
			}
			if signKey == "" {
				return errSignKeyRequired
			}

			auth := service.NewAuthService(config.App{
				TokenSignKey:  signKey,
				TokenIssuer:   issuer,
				TokenDuration: duration,
				AuthMode:      config.AuthModeJWT,
			}, c.log)

			token, err := auth.CreateToken(cmd.Context(), models.Caller{ID: subject, Email: email})
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "owner id placed in the sub claim")
	cmd.Flags().StringVar(&email, "email", "", "optional email claim")
	cmd.Flags().StringVar(&signKey, "sign-key", os.Getenv("APP_TOKEN_SIGN_KEY"), "HMAC signing secret shared with the server")
	cmd.Flags().StringVar(&issuer, "issuer", envOr("APP_TOKEN_ISSUER", "go-rsa-vault"), "iss claim; must match the server's token issuer")
	cmd.Flags().DurationVar(&duration, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
