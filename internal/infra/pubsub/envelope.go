// Package pubsub republishes change events so the notifier can consume them
// through a Pub/Sub push subscription.
package pubsub

import (
	"strik/internal/domain/entity"
)

// Message attribute keys
const (
	AttributeTable     = "table"
	AttributeEventType = "event_type"
	AttributeRequestID = "request_id"
)

// PushEnvelope is the body Pub/Sub posts to a push endpoint
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"` // base64 encoded ChangeEvent
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// attributesFor returns the routing and tracing attributes of event
func attributesFor(event *entity.ChangeEvent) map[string]string {
	attributes := map[string]string{
		AttributeEventType: event.Type,
	}
	if table := event.TableName(); table != "" {
		attributes[AttributeTable] = table
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return attributes
}
