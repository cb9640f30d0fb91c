package usecase

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// PushClientInfo represents a mobile client registering for push notifications.
type PushClientInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	ClientID string `json:"client_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// PushRegistrationUsecase defines the interface for push registration use cases.
type PushRegistrationUsecase interface {
	// Register registers a new client or refreshes the token of an existing one.
	Register(ctx context.Context, userID uuid.UUID, info *PushClientInfo) (*entity.PushRegistration, error)

	// Unregister removes the caller's registration holding the token.
	Unregister(ctx context.Context, userID uuid.UUID, fcmToken string) error
}
