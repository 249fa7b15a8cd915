package postgres

import (
	"context"

	"strik/internal/domain/entity"
	"strik/internal/domain/repository"
	"strik/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotifications appends notification rows in one transaction and fills their generated values.
// A failed chunk rolls back the chunks before it; committed rows are pushed by the database webhook.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, records []*entity.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(records))
	for _, record := range records {
		notificationModels = append(notificationModels, fromNotificationDomain(record))
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(notificationModels, insertBatchSize).Error
	})
	if err != nil {
		return classifyWriteError(err, "failed to insert notifications")
	}

	// Update the entities with generated values
	for idx, notificationM := range notificationModels {
		records[idx].ID = notificationM.ID
		records[idx].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// fromNotificationDomain converts a domain NotificationRecord to a GORM NotificationModel.
func fromNotificationDomain(data *entity.NotificationRecord) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationType := data.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		SenderID:    data.SenderID,
		Type:        notificationType.String(),
		Title:       data.Title,
		Body:        data.Body,
		PostID:      data.PostID,
		StoryID:     data.StoryID,
		HabitLogID:  data.HabitLogID,
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
	}
}
