// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo repository.ProfileRepository) usecase.ProfileUsecase {
	return &profileService{profileRepo: profileRepo}
}

// ListStaff returns the staff directory
func (s *profileService) ListStaff(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	return profiles, nil
}

// GetProfile returns one staff member
func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
