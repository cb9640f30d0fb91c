package repository

import (
	"context"
	"time"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrAssignmentNotFound is returned when a device has no current assignment.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDuplicateCurrentAssignment is returned when a second current assignment would be created for a device.
	ErrDuplicateCurrentAssignment = errors.New("device already has a current assignment")
)

// AssignmentRepository defines the interface for the device custody ledger.
type AssignmentRepository interface {
	// Create appends a new assignment row.
	Create(ctx context.Context, assignment *entity.DeviceAssignment) error

	// FindCurrent retrieves the current assignment of a device.
	FindCurrent(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceAssignment, error)

	// FindCurrentByDevices retrieves the current assignments of the given devices keyed by device ID.
	FindCurrentByDevices(ctx context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID]*entity.DeviceAssignment, error)

	// CountCurrent counts the current assignments of a device.
	CountCurrent(ctx context.Context, deviceID uuid.UUID) (int64, error)

	// Close marks an assignment as handed over.
	Close(ctx context.Context, id uuid.UUID, at time.Time, notes string) error

	// ListByDevice retrieves every assignment of a device, newest first.
	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceAssignment, error)

	// ListCurrentByUser retrieves the current assignments held by a user.
	ListCurrentByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceAssignment, error)
}
