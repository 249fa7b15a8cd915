package entity

import (
	"encoding/json"
	"strings"
)

// ChangeEvent is a database change notification as delivered by the webhook
// or re-published through Pub/Sub. A nil Table marks a direct invocation.
type ChangeEvent struct {
	Type      string          `json:"type"`
	Table     *string         `json:"table"`
	Schema    string          `json:"schema,omitempty"`
	Record    json.RawMessage `json:"record"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
}

// TableName returns the source table or an empty string.
func (e *ChangeEvent) TableName() string {
	if e.Table == nil {
		return ""
	}

	return *e.Table
}

// HasRecord reports whether the event carries a non-null record.
func (e *ChangeEvent) HasRecord() bool {
	trimmed := strings.TrimSpace(string(e.Record))

	return trimmed != "" && trimmed != "null"
}
