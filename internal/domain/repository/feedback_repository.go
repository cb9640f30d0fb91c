package repository

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeedbackNotFound is returned when a feedback item is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the interface for staff feedback.
type FeedbackRepository interface {
	// List retrieves feedback newest first. A nil userIDs slice means every submitter.
	List(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Feedback, error)

	// FindByID retrieves a feedback item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// UpdateStatus sets the status of a feedback item.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) error
}
