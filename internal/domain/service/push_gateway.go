package service

import (
	"context"

	"strik/internal/domain/entity"
)

// TokenProvider mints a bearer token for the push gateway.
type TokenProvider interface {
	// Token performs one signed-assertion exchange. It is not cached across calls.
	Token(ctx context.Context) (*entity.AccessToken, error)
}

// PushGateway opens delivery sessions against the push provider
type PushGateway interface {
	// Open prepares a session for one invocation, fetching credentials at most once
	Open(ctx context.Context) (PushSession, error)
}

// PushSession sends messages with credentials fixed for its lifetime.
// It is safe for concurrent use.
type PushSession interface {
	// Send delivers one message and returns the gateway message name
	Send(ctx context.Context, msg *entity.PushMessage) (string, error)
}
