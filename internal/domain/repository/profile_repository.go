package repository

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a staff profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for the staff directory.
type ProfileRepository interface {
	// FindByID retrieves a profile by user ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByIDs retrieves the profiles of the given users keyed by user ID.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error)

	// List retrieves every profile ordered by first name.
	List(ctx context.Context) ([]*entity.Profile, error)

	// ListByDepartments retrieves the profiles belonging to any of the departments.
	ListByDepartments(ctx context.Context, departments []string) ([]*entity.Profile, error)
}
