// Package cli implements strikctl, the operator command line.
package cli

import (
	"context"
	"encoding/json"
	"io"
	"slices"

	"strik/internal/domain/service"
	"strik/internal/errors"
	"strik/internal/usecase"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Backend resolves the services commands talk to. Each returned stop
// function releases what the open call started.
type Backend interface {
	OpenEvents(ctx context.Context) (usecase.EventUsecase, func(context.Context) error, error)
	OpenTokens(ctx context.Context) (service.TokenProvider, func(context.Context) error, error)
}

// NewRootCommand creates the root command for strikctl.
func NewRootCommand(backend Backend) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "strikctl",
		Short: "Operator tools for the Strik notifier",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return errors.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPushCommand(opts, backend))
	cmd.AddCommand(NewTokenCommand(opts, backend))

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
