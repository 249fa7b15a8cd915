package service

import (
	"context"

	"strik/internal/domain/entity"
)

// EventPublisher defines the interface for publishing change events to a message queue
type EventPublisher interface {
	// PublishChangeEvent publishes a change event for async processing by the notifier
	PublishChangeEvent(ctx context.Context, event *entity.ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
