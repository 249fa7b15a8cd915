package cli

import (
	"fmt"
	"time"

	"strik/internal/errors"

	"github.com/spf13/cobra"
)

// tokenReport is what the token command prints. The token itself never is.
type tokenReport struct {
	ProjectID string    `json:"project_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand(rootOpts *RootOptions, backend Backend) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Check push credentials by minting an access token",
		Long: `Mint one access token with the configured service account.

Only the project id and the expiry are printed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tokens, stop, err := backend.OpenTokens(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to load credentials")
			}
			defer func() { _ = stop(ctx) }()

			token, err := tokens.Token(ctx)
			if err != nil {
				return err
			}

			report := tokenReport{ProjectID: token.ProjectID, ExpiresAt: token.ExpiresAt.UTC()}
			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "project_id: %s\nexpires_at: %s\n",
				report.ProjectID, report.ExpiresAt.Format(time.RFC3339))

			return err
		},
	}
}
