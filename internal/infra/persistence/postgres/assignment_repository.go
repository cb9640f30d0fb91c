package postgres

import (
	"context"
	"time"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assignmentRepository implements the repository.AssignmentRepository interface.
type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository is the constructor for assignmentRepository.
func NewAssignmentRepository(db *gorm.DB) repository.AssignmentRepository {
	return &assignmentRepository{
		db: db,
	}
}

// Create appends a new assignment row.
func (repo *assignmentRepository) Create(ctx context.Context, assignment *entity.DeviceAssignment) error {
	assignmentM := fromAssignmentDomain(assignment)

	if err := repo.db.WithContext(ctx).Create(assignmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCurrentAssignment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("invalid device reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device assignment")
	}

	assignment.ID = assignmentM.ID

	return nil
}

// FindCurrent retrieves the current assignment of a device.
func (repo *assignmentRepository) FindCurrent(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceAssignment, error) {
	var assignmentM model.DeviceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND is_current = ?", deviceID, true).
		First(&assignmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssignmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find current assignment")
	}

	return toAssignmentDomain(&assignmentM), nil
}

// FindCurrentByDevices retrieves the current assignments of the given devices keyed by device ID.
func (repo *assignmentRepository) FindCurrentByDevices(ctx context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID]*entity.DeviceAssignment, error) {
	result := make(map[uuid.UUID]*entity.DeviceAssignment, len(deviceIDs))
	if len(deviceIDs) == 0 {
		return result, nil
	}

	var assignmentModels []*model.DeviceAssignmentModel
	if err := repo.db.WithContext(ctx).
		Where("device_id IN ? AND is_current = ?", deviceIDs, true).
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find current assignments")
	}

	for _, assignmentM := range assignmentModels {
		result[assignmentM.DeviceID] = toAssignmentDomain(assignmentM)
	}

	return result, nil
}

// CountCurrent counts the current assignments of a device.
func (repo *assignmentRepository) CountCurrent(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceAssignmentModel{}).
		Where("device_id = ? AND is_current = ?", deviceID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count current assignments")
	}

	return count, nil
}

// Close marks an assignment as handed over. Only a current row can be closed.
func (repo *assignmentRepository) Close(ctx context.Context, id uuid.UUID, at time.Time, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceAssignmentModel{}).
		Where("id = ? AND is_current = ?", id, true).
		Updates(map[string]any{
			"is_current":     false,
			"handed_over_at": at,
			"handover_notes": notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to close assignment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAssignmentNotFound
	}

	return nil
}

// ListByDevice retrieves every assignment of a device, newest first.
func (repo *assignmentRepository) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceAssignment, error) {
	var assignmentModels []*model.DeviceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("assigned_at DESC").
		Order("is_current DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list device assignments")
	}

	return toAssignmentDomains(assignmentModels), nil
}

// ListCurrentByUser retrieves the current assignments held by a user.
func (repo *assignmentRepository) ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceAssignment, error) {
	var assignmentModels []*model.DeviceAssignmentModel

	if err := repo.db.WithContext(ctx).
		Where("assigned_to = ? AND is_current = ?", userID, true).
		Order("assigned_at DESC").
		Find(&assignmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list current assignments by user")
	}

	return toAssignmentDomains(assignmentModels), nil
}

// --- Mapper Functions ---

func toAssignmentDomain(data *model.DeviceAssignmentModel) *entity.DeviceAssignment {
	if data == nil {
		return nil
	}

	return &entity.DeviceAssignment{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		AssignedTo:      data.AssignedTo,
		AssignedFrom:    data.AssignedFrom,
		AssignedBy:      data.AssignedBy,
		AssignmentNotes: data.AssignmentNotes,
		IsCurrent:       data.IsCurrent,
		AssignedAt:      data.AssignedAt,
		HandedOverAt:    data.HandedOverAt,
		HandoverNotes:   data.HandoverNotes,
	}
}

func toAssignmentDomains(models []*model.DeviceAssignmentModel) []*entity.DeviceAssignment {
	assignments := make([]*entity.DeviceAssignment, 0, len(models))
	for _, assignmentM := range models {
		assignments = append(assignments, toAssignmentDomain(assignmentM))
	}

	return assignments
}

func fromAssignmentDomain(data *entity.DeviceAssignment) *model.DeviceAssignmentModel {
	if data == nil {
		return nil
	}

	return &model.DeviceAssignmentModel{
		ID:              data.ID,
		DeviceID:        data.DeviceID,
		AssignedTo:      data.AssignedTo,
		AssignedFrom:    data.AssignedFrom,
		AssignedBy:      data.AssignedBy,
		AssignmentNotes: data.AssignmentNotes,
		IsCurrent:       data.IsCurrent,
		AssignedAt:      data.AssignedAt,
		HandedOverAt:    data.HandedOverAt,
		HandoverNotes:   data.HandoverNotes,
	}
}
