// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found or not owned by the caller.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
// Every read and write is scoped to the owning user.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification owned by userID.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)

	// ListActive retrieves the non-archived notifications of a user, newest first.
	// A limit of zero or less returns every row.
	ListActive(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnread counts the unread, non-archived notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// SetRead sets or clears the read flag and returns the updated row.
	SetRead(ctx context.Context, userID, id uuid.UUID, read bool, at time.Time) (*entity.Notification, error)

	// MarkAllRead marks every unread notification of a user read in a single statement.
	// When ids is non-empty only those rows are touched. The updated rows are returned.
	MarkAllRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, at time.Time) ([]*entity.Notification, error)

	// Archive flags a notification archived and returns the updated row.
	Archive(ctx context.Context, userID, id uuid.UUID, at time.Time) (*entity.Notification, error)

	// RecordClick flags a notification clicked and returns the updated row.
	RecordClick(ctx context.Context, userID, id uuid.UUID, at time.Time) (*entity.Notification, error)

	// Delete removes a notification and returns the removed row.
	Delete(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)
}
