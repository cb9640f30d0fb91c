package usecase

import (
	"context"
	"encoding/json"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNotificationInput describes a notification produced on the server for one or more recipients.
type CreateNotificationInput struct {
	Recipients  []uuid.UUID                 `json:"recipients" validate:"required,min=1,dive,required"`
	Type        entity.NotificationType     `json:"type" validate:"required"`
	Category    string                      `json:"category" validate:"required,max=50"`
	Priority    entity.NotificationPriority `json:"priority"`
	Title       string                      `json:"title" validate:"required,max=200"`
	Message     string                      `json:"message" validate:"required,max=2000"`
	RichContent json.RawMessage             `json:"rich_content,omitempty"`
	LinkURL     string                      `json:"link_url,omitempty" validate:"omitempty,max=500"`
	LinkText    string                      `json:"link_text,omitempty" validate:"omitempty,max=100"`
	EntityType  string                      `json:"entity_type,omitempty"`
	EntityID    *uuid.UUID                  `json:"entity_id,omitempty"`
	ExpiresAt   *time.Time                  `json:"expires_at,omitempty"`

	// Actor is filled from the authenticated caller, never from the request body.
	Actor *entity.Profile `json:"-"`
}

// NotificationUsecase defines the notification lifecycle as seen by the owning user.
// Every method is scoped by the caller's user id; rows owned by someone else are reported as not found.
type NotificationUsecase interface {
	// ListActive returns non-archived notifications newest-first. A limit of zero returns all of them.
	ListActive(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread, non-archived notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	MarkRead(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
	MarkUnread(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)

	// MarkAllRead marks every unread notification (or only the given ids) read in one statement
	// and returns how many rows changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error)

	Archive(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// RecordClick stamps clicked/clicked_at and returns the updated notification.
	RecordClick(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)

	// Create persists one notification per recipient and delivers them.
	Create(ctx context.Context, input *CreateNotificationInput) ([]*entity.Notification, error)

	// Deliver publishes already persisted notifications on the realtime feed and pushes
	// the urgent ones to mobile devices. Delivery is best effort and never fails the caller.
	Deliver(ctx context.Context, notifications []*entity.Notification)
}

// BuildNotifications turns the input into one unsaved notification per recipient.
func BuildNotifications(input *CreateNotificationInput, now time.Time) []*entity.Notification {
	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	notifications := make([]*entity.Notification, 0, len(input.Recipients))
	for _, recipient := range input.Recipients {
		n := &entity.Notification{
			ID:          uuid.New(),
			UserID:      recipient,
			Type:        input.Type,
			Category:    input.Category,
			Priority:    priority,
			Title:       input.Title,
			Message:     input.Message,
			RichContent: input.RichContent,
			LinkURL:     input.LinkURL,
			LinkText:    input.LinkText,
			EntityType:  input.EntityType,
			EntityID:    input.EntityID,
			CreatedAt:   now,
			ExpiresAt:   input.ExpiresAt,
		}
		if input.Actor != nil {
			actorID := input.Actor.ID
			n.ActorID = &actorID
			n.ActorName = input.Actor.FullName()
			n.ActorAvatar = input.Actor.AvatarURL
		}
		notifications = append(notifications, n)
	}

	return notifications
}
