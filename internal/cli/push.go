package cli

import (
	"encoding/json"
	"fmt"

	"strik/internal/domain/constants"
	"strik/internal/domain/entity"
	"strik/internal/errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// PushOptions holds flags for the push command.
type PushOptions struct {
	*RootOptions
	Title string
	Body  string
	Type  string
	Data  map[string]string
}

// NewPushCommand creates the push command.
func NewPushCommand(rootOpts *RootOptions, backend Backend) *cobra.Command {
	opts := &PushOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "push <recipient-id>",
		Short: "Send a direct push to one user",
		Long: `Send a direct push to one user through the event router.

The recipient must have a registered device token. Data values are sent as-is.

Example:
  strikctl push 0b6f3c2a-6c1e-4f57-9d8a-0b2a2f7d9c11 --title "Halo" --body "Tes push" --data post_id=42`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, opts, backend, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "notification title (default \"Strik!\")")
	cmd.Flags().StringVar(&opts.Body, "body", "", "notification body (default \"Notification\")")
	cmd.Flags().StringVar(&opts.Type, "type", "", "semantic type carried in data (default \"general\")")
	cmd.Flags().StringToStringVar(&opts.Data, "data", nil, "extra data fields as key=value pairs")

	return cmd
}

func runPush(cmd *cobra.Command, opts *PushOptions, backend Backend, recipient string) error {
	recipientID, err := uuid.Parse(recipient)
	if err != nil {
		return errors.Wrapf(err, "invalid recipient id %q", recipient)
	}

	event, err := directEvent(recipientID, opts)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	events, stop, err := backend.OpenEvents(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to start event router")
	}
	defer func() { _ = stop(ctx) }()

	result, err := events.Route(ctx, event)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (sent=%d failed=%d)\n", result.Message, result.Sent, result.Failed)

	return err
}

// directEvent builds the table-less INSERT the router treats as a direct push
func directEvent(recipientID uuid.UUID, opts *PushOptions) (*entity.ChangeEvent, error) {
	data := make(map[string]any, len(opts.Data)+1)
	for key, value := range opts.Data {
		data[key] = value
	}
	if opts.Type != "" {
		data["type"] = opts.Type
	}

	record, err := json.Marshal(map[string]any{
		"recipient_id": recipientID,
		"title":        opts.Title,
		"body":         opts.Body,
		"data":         data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode direct push")
	}

	return &entity.ChangeEvent{
		Type:   constants.EventTypeInsert,
		Record: record,
	}, nil
}
