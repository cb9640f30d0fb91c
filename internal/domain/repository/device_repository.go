// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a device with the same serial number already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for company device database operations.
type DeviceRepository interface {
	// Create persists a new device.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByIDForUpdate retrieves a device and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindByIDs retrieves the devices with the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Device, error)

	// List retrieves devices matching the filter ordered by name.
	List(ctx context.Context, filter entity.DeviceFilter) ([]*entity.Device, error)

	// Update overwrites the mutable fields of a device.
	Update(ctx context.Context, device *entity.Device) error

	// UpdateStatus sets the status of a device.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DeviceStatus) error

	// Delete removes a device.
	Delete(ctx context.Context, id uuid.UUID) error
}
