// Package notification delivers push messages through Firebase Cloud Messaging.
package notification

import "strik/internal/domain/entity"

// fcmRequest is the body of the HTTP v1 messages:send call
type fcmRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification *fcmNotification  `json:"notification,omitempty"`
	Data         map[string]string `json:"data"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Name string `json:"name"`
}

// newFCMRequest renders msg; data-only types carry no notification block
func newFCMRequest(msg *entity.PushMessage) *fcmRequest {
	req := &fcmRequest{
		Message: fcmMessage{
			Token: msg.DeviceToken,
			Data:  msg.WireData(),
		},
	}
	if !msg.DataOnly() {
		req.Message.Notification = &fcmNotification{Title: msg.Title, Body: msg.Body}
	}

	return req
}
