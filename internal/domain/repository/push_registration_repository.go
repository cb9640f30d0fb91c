package repository

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrPushRegistrationNotFound is returned when a push registration is not found.
	ErrPushRegistrationNotFound = errors.New("push registration not found")
	// ErrDuplicatePushRegistration is returned when a token is already registered.
	ErrDuplicatePushRegistration = errors.New("push registration already exists")
)

// PushRegistrationRepository defines the interface for mobile push token registrations.
type PushRegistrationRepository interface {
	// Create persists a new registration.
	Create(ctx context.Context, registration *entity.PushRegistration) error

	// FindByClient retrieves the registration of a user's handset.
	FindByClient(ctx context.Context, userID uuid.UUID, clientID string) (*entity.PushRegistration, error)

	// FindActiveByUser retrieves all active registrations of a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error)

	// UpdateToken replaces the FCM token of a registration and reactivates it.
	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateTokens marks every registration holding one of the tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// DeleteByToken removes the user's registration holding the token.
	DeleteByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
