package postgres

import (
	"context"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pushRegistrationRepository implements the repository.PushRegistrationRepository interface.
type pushRegistrationRepository struct {
	db *gorm.DB
}

// NewPushRegistrationRepository is the constructor for pushRegistrationRepository.
func NewPushRegistrationRepository(db *gorm.DB) repository.PushRegistrationRepository {
	return &pushRegistrationRepository{
		db: db,
	}
}

// Create persists a new registration.
func (repo *pushRegistrationRepository) Create(ctx context.Context, registration *entity.PushRegistration) error {
	registrationM := fromPushRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(registrationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePushRegistration
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required push registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create push registration")
	}

	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt
	registration.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// FindByClient retrieves the registration of a user's handset.
func (repo *pushRegistrationRepository) FindByClient(ctx context.Context, userID uuid.UUID, clientID string) (*entity.PushRegistration, error) {
	var registrationM model.PushRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPushRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find push registration by client")
	}

	return toPushRegistrationDomain(&registrationM), nil
}

// FindActiveByUser retrieves all active registrations of a user.
func (repo *pushRegistrationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error) {
	var registrationModels []*model.PushRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active push registrations by user")
	}

	registrations := make([]*entity.PushRegistration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toPushRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// UpdateToken replaces the FCM token of a registration and reactivates it.
func (repo *pushRegistrationRepository) UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushRegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushRegistrationNotFound
	}

	return nil
}

// DeactivateTokens marks every registration holding one of the tokens inactive.
func (repo *pushRegistrationRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PushRegistrationModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate push tokens")
	}

	return nil
}

// DeleteByToken removes the user's registration holding the token (soft delete).
func (repo *pushRegistrationRepository) DeleteByToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND fcm_token = ?", userID, fcmToken).
		Delete(&model.PushRegistrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete push registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPushRegistrationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPushRegistrationDomain(data *model.PushRegistrationModel) *entity.PushRegistration {
	if data == nil {
		return nil
	}

	return &entity.PushRegistration{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		ClientID:  data.ClientID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPushRegistrationDomain(data *entity.PushRegistration) *model.PushRegistrationModel {
	if data == nil {
		return nil
	}

	return &model.PushRegistrationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		ClientID:  data.ClientID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
