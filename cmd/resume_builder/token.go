package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the editor API",
	Long:  "Signs an HS256 token with RESUME_JWT_SECRET, valid for RESUME_JWT_TTL (default 24h).",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cli", "Token subject")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	jwtCfg, err := config.LoadJWTConfig(true)
	if err != nil {
		return err
	}
	token, expires, err := server.NewTokenService(jwtCfg).GenerateToken(tokenSubject)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, token)
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Expires %s\n", expires.Format(time.RFC3339))
	return nil
}
