package repository

import (
	"context"

	"strik/internal/domain/entity"
)

// NotificationRepository defines write access to in-app notifications.
type NotificationRepository interface {
	// BatchCreateNotifications appends notification rows and fills their generated IDs.
	BatchCreateNotifications(ctx context.Context, records []*entity.NotificationRecord) error
}
