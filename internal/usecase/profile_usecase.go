// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase exposes the staff directory.
type ProfileUsecase interface {
	ListStaff(ctx context.Context) ([]*entity.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
