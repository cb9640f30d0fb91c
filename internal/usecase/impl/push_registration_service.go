package impl

import (
	"context"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushRegistrationService struct {
	pushRepo repository.PushRegistrationRepository
	now      func() time.Time
}

// NewPushRegistrationService creates a new push registration service instance
func NewPushRegistrationService(pushRepo repository.PushRegistrationRepository) usecase.PushRegistrationUsecase {
	return &pushRegistrationService{
		pushRepo: pushRepo,
		now:      time.Now,
	}
}

// Register registers a new client or refreshes the token of an existing one
func (s *pushRegistrationService) Register(ctx context.Context, userID uuid.UUID, info *usecase.PushClientInfo) (*entity.PushRegistration, error) {
	if info == nil || info.FCMToken == "" || info.ClientID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token and client id are required")
	}

	existing, err := s.pushRepo.FindByClient(ctx, userID, info.ClientID)
	if err != nil && !errors.Is(err, repository.ErrPushRegistrationNotFound) {
		return nil, errors.Wrap(err, "failed to find push registration")
	}

	if existing != nil {
		if existing.FCMToken == info.FCMToken && existing.IsActive {
			return existing, nil
		}
		if err := s.pushRepo.UpdateToken(ctx, existing.ID, info.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}
		existing.FCMToken = info.FCMToken
		existing.IsActive = true
		existing.UpdatedAt = s.now()

		return existing, nil
	}

	now := s.now()
	registration := &entity.PushRegistration{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		ClientID:  info.ClientID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pushRepo.Create(ctx, registration); err != nil {
		return nil, errors.Wrap(err, "failed to create push registration")
	}

	return registration, nil
}

// Unregister removes the caller's registration holding the token
func (s *pushRegistrationService) Unregister(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if err := s.pushRepo.DeleteByToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrPushRegistrationNotFound) {
			return domainerrors.ErrPushRegistrationNotFound
		}

		return errors.Wrap(err, "failed to delete push registration")
	}

	return nil
}
