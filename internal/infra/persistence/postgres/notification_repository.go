// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// notificationRepository implements the repository.NotificationRepository interface.
// Every statement carries the owner condition so one user can never touch another user's rows.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid notification recipient")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification owned by userID.
func (repo *notificationRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.owned(ctx, userID, id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListActive retrieves the non-archived notifications of a user, newest first.
func (repo *notificationRepository) ListActive(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND archived = ?", userID, false).
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread counts the unread, non-archived notifications of a user.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ? AND archived = ?", userID, false, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// SetRead sets or clears the read flag and returns the updated row.
func (repo *notificationRepository) SetRead(ctx context.Context, userID, id uuid.UUID, read bool, at time.Time) (*entity.Notification, error) {
	values := map[string]any{"read": read, "read_at": nil}
	if read {
		values["read_at"] = at
	}

	return repo.updateOne(ctx, userID, id, values, "failed to update read state")
}

// MarkAllRead marks unread notifications read in one statement and returns the touched rows.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, at time.Time) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel

	query := repo.db.WithContext(ctx).
		Model(&notificationModels).
		Clauses(clause.Returning{}).
		Where("user_id = ? AND read = ?", userID, false)

	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	if err := query.Updates(map[string]any{"read": true, "read_at": at}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications read")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		notifications = append(notifications, toNotificationDomain(&notificationModels[i]))
	}

	return notifications, nil
}

// Archive flags a notification archived and returns the updated row.
func (repo *notificationRepository) Archive(ctx context.Context, userID, id uuid.UUID, at time.Time) (*entity.Notification, error) {
	return repo.updateOne(ctx, userID, id, map[string]any{"archived": true, "archived_at": at}, "failed to archive notification")
}

// RecordClick flags a notification clicked and returns the updated row.
func (repo *notificationRepository) RecordClick(ctx context.Context, userID, id uuid.UUID, at time.Time) (*entity.Notification, error) {
	return repo.updateOne(ctx, userID, id, map[string]any{"clicked": true, "clicked_at": at}, "failed to record notification click")
}

// Delete removes a notification and returns the removed row.
func (repo *notificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	result := repo.owned(ctx, userID, id).
		Clauses(clause.Returning{}).
		Delete(&notificationM)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(&notificationM), nil
}

func (repo *notificationRepository) owned(ctx context.Context, userID, id uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID)
}

func (repo *notificationRepository) updateOne(ctx context.Context, userID, id uuid.UUID, values map[string]any, msg string) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	result := repo.owned(ctx, userID, id).
		Model(&notificationM).
		Clauses(clause.Returning{}).
		Updates(values)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(&notificationM), nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	var richContent json.RawMessage
	if len(data.RichContent) > 0 {
		richContent = json.RawMessage(data.RichContent)
	}

	return &entity.Notification{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.NotificationType(data.Type),
		Category:    data.Category,
		Priority:    entity.NotificationPriority(data.Priority),
		Title:       data.Title,
		Message:     data.Message,
		RichContent: richContent,
		LinkURL:     data.LinkURL,
		LinkText:    data.LinkText,
		ActorID:     data.ActorID,
		ActorName:   data.ActorName,
		ActorAvatar: data.ActorAvatar,
		EntityType:  data.EntityType,
		EntityID:    data.EntityID,
		Read:        data.Read,
		ReadAt:      data.ReadAt,
		Archived:    data.Archived,
		ArchivedAt:  data.ArchivedAt,
		Clicked:     data.Clicked,
		ClickedAt:   data.ClickedAt,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	var richContent datatypes.JSON
	if len(data.RichContent) > 0 {
		richContent = datatypes.JSON(data.RichContent)
	}

	return &model.NotificationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Category:    data.Category,
		Priority:    string(data.Priority),
		Title:       data.Title,
		Message:     data.Message,
		RichContent: richContent,
		LinkURL:     data.LinkURL,
		LinkText:    data.LinkText,
		ActorID:     data.ActorID,
		ActorName:   data.ActorName,
		ActorAvatar: data.ActorAvatar,
		EntityType:  data.EntityType,
		EntityID:    data.EntityID,
		Read:        data.Read,
		ReadAt:      data.ReadAt,
		Archived:    data.Archived,
		ArchivedAt:  data.ArchivedAt,
		Clicked:     data.Clicked,
		ClickedAt:   data.ClickedAt,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
