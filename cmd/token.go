package cmd

import (
	"errors"
	"fmt"
	"time"

	"booking-app/config"
	"booking-app/internal/app/http/middleware"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an editor token signed with EDITOR_JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.HTTP.EditorJWTSecret == "" {
			return errors.New("EDITOR_JWT_SECRET is not set; the write routes are open")
		}
		if tokenRole != middleware.RoleEditor && tokenRole != middleware.RoleAdmin {
			return fmt.Errorf("role must be %q or %q", middleware.RoleEditor, middleware.RoleAdmin)
		}

		token, err := middleware.SignEditorToken(cfg.HTTP.EditorJWTSecret, tokenSubject, tokenRole, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "editor", "token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", middleware.RoleEditor, "editor or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
