package notification

import (
	"context"

	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/domain/service"
	"strik/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseGateway struct {
	client *messaging.Client
}

// NewFirebaseGateway creates a gateway backed by the Admin SDK messaging client.
// The SDK manages its own token cache, so Open does no network work.
func NewFirebaseGateway(ctx context.Context, projectID string, credentialsJSON []byte) (service.PushGateway, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseGateway{client: client}, nil
}

// Open implements service.PushGateway
func (g *firebaseGateway) Open(context.Context) (service.PushSession, error) {
	return g, nil
}

// Send implements service.PushSession
func (g *firebaseGateway) Send(ctx context.Context, msg *entity.PushMessage) (string, error) {
	name, err := g.client.Send(ctx, toMessagingMessage(msg))
	if err != nil {
		return "", toDeliveryError(err)
	}

	return name, nil
}

func toMessagingMessage(msg *entity.PushMessage) *messaging.Message {
	message := &messaging.Message{
		Token: msg.DeviceToken,
		Data:  msg.WireData(),
	}
	if !msg.DataOnly() {
		message.Notification = &messaging.Notification{Title: msg.Title, Body: msg.Body}
	}

	return message
}

// toDeliveryError keeps the upstream status when the SDK exposes the response
func toDeliveryError(err error) error {
	if resp := errorutils.HTTPResponse(err); resp != nil {
		return domainerrors.NewDeliveryError(resp.StatusCode, err.Error())
	}

	return domainerrors.NewDeliveryTransportError(err)
}
