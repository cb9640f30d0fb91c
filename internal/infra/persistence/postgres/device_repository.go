// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidDeviceStatus.WrapMessage("device status rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt

	return nil
}

// FindByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a device with a row lock held until the transaction ends.
func (repo *deviceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *deviceRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := db.Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByIDs retrieves the devices with the given IDs.
func (repo *deviceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Device, error) {
	if len(ids) == 0 {
		return []*entity.Device{}, nil
	}

	var deviceModels []*model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("device_name ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by IDs")
	}

	return toDeviceDomains(deviceModels), nil
}

// List retrieves devices matching the filter ordered by name.
func (repo *deviceRepository) List(ctx context.Context, filter entity.DeviceFilter) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	query := repo.db.WithContext(ctx).Order("device_name ASC")

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			"device_name ILIKE ? OR device_type ILIKE ? OR serial_number ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := query.Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return toDeviceDomains(deviceModels), nil
}

// Update overwrites the mutable fields of a device.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"device_name":   deviceM.DeviceName,
			"device_type":   deviceM.DeviceType,
			"device_model":  deviceM.DeviceModel,
			"serial_number": deviceM.SerialNumber,
			"status":        deviceM.Status,
			"notes":         deviceM.Notes,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateStatus sets the status of a device.
func (repo *deviceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// Delete removes a device.
func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// escapeLike escapes the LIKE wildcards of user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	serial := ""
	if data.SerialNumber != nil {
		serial = *data.SerialNumber
	}

	return &entity.Device{
		ID:           data.ID,
		Name:         data.DeviceName,
		Type:         data.DeviceType,
		Model:        data.DeviceModel,
		SerialNumber: serial,
		Status:       entity.DeviceStatus(data.Status),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		CreatedBy:    data.CreatedBy,
	}
}

func toDeviceDomains(models []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(models))
	for _, deviceM := range models {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
// An empty serial number is stored as NULL so the unique index ignores it.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	var serial *string
	if s := strings.TrimSpace(data.SerialNumber); s != "" {
		serial = &s
	}

	return &model.DeviceModel{
		ID:           data.ID,
		DeviceName:   data.Name,
		DeviceType:   data.Type,
		DeviceModel:  data.Model,
		SerialNumber: serial,
		Status:       string(data.Status),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		CreatedBy:    data.CreatedBy,
	}
}
