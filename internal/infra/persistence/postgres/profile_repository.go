package postgres

import (
	"context"

	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by user ID.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByIDs retrieves the profiles of the given users keyed by user ID.
func (repo *profileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Profile, error) {
	result := make(map[uuid.UUID]*entity.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by IDs")
	}

	for _, profileM := range profileModels {
		result[profileM.ID] = toProfileDomain(profileM)
	}

	return result, nil
}

// List retrieves every profile ordered by first name.
func (repo *profileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Order("first_name ASC").
		Order("last_name ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return toProfileDomains(profileModels), nil
}

// ListByDepartments retrieves the profiles belonging to any of the departments.
func (repo *profileRepository) ListByDepartments(ctx context.Context, departments []string) ([]*entity.Profile, error) {
	if len(departments) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("department IN ?", departments).
		Order("first_name ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles by departments")
	}

	return toProfileDomains(profileModels), nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		CompanyEmail:    data.CompanyEmail,
		Department:      data.Department,
		Role:            entity.Role(data.Role),
		LeadDepartments: []string(data.LeadDepartments),
		AvatarURL:       data.AvatarURL,
		CreatedAt:       data.CreatedAt,
	}
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, profileM := range models {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}
