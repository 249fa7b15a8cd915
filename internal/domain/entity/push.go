package entity

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// ClickActionMarker is sent with every push so the client routes taps into the app.
const ClickActionMarker = "FLUTTER_NOTIFICATION_CLICK"

// Reserved data keys
const (
	DataKeyClickAction = "click_action"
	DataKeyType        = "type"
	DataKeyTitle       = "title"
	DataKeyBody        = "body"
)

// AccessToken is a bearer token for the push gateway, valid for one invocation.
type AccessToken struct {
	Token     string
	ProjectID string
	ExpiresAt time.Time
}

// PushMessage is constructed per dispatch and never persisted.
type PushMessage struct {
	DeviceToken string
	Type        NotificationType
	Title       string
	Body        string
	Data        map[string]string
}

// NewPushMessage copies data and stamps the click action and semantic type.
func NewPushMessage(deviceToken, title, body string, notificationType NotificationType, data map[string]string) *PushMessage {
	payload := make(map[string]string, len(data)+2)
	maps.Copy(payload, data)
	payload[DataKeyClickAction] = ClickActionMarker
	payload[DataKeyType] = notificationType.String()

	return &PushMessage{
		DeviceToken: deviceToken,
		Type:        notificationType,
		Title:       title,
		Body:        body,
		Data:        payload,
	}
}

// DataOnly reports whether the message must be sent without a notification block.
func (m *PushMessage) DataOnly() bool {
	return m.Type.DataOnly()
}

// WireData returns the data map as sent; data-only messages carry title and body inside it.
func (m *PushMessage) WireData() map[string]string {
	data := maps.Clone(m.Data)
	if m.DataOnly() {
		data[DataKeyTitle] = m.Title
		data[DataKeyBody] = m.Body
	}

	return data
}

// DeliveryResult is the outcome of one recipient's dispatch.
type DeliveryResult struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	MessageID   string    `json:"message_id,omitempty"` // Gateway message name on success.
	Err         error     `json:"-"`
}

// Delivered reports whether the gateway accepted the message.
func (r *DeliveryResult) Delivered() bool {
	return r != nil && r.Err == nil
}
