package usecase

import (
	"context"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInput holds the editable attributes of a device.
type DeviceInput struct {
	Name         string              `json:"device_name" validate:"required,max=100"`
	Type         string              `json:"device_type" validate:"required,max=50"`
	Model        string              `json:"device_model" validate:"omitempty,max=100"`
	SerialNumber string              `json:"serial_number" validate:"omitempty,max=100"`
	Status       entity.DeviceStatus `json:"status" validate:"omitempty,oneof=available assigned maintenance retired"`
	Notes        string              `json:"notes" validate:"omitempty,max=1000"`
}

// AssignDeviceInput describes a hand-over of a device to a staff member.
type AssignDeviceInput struct {
	DeviceID   uuid.UUID
	AssignedTo uuid.UUID
	ActorID    uuid.UUID
	Notes      string
}

// DeviceUsecase defines the device assignment ledger.
type DeviceUsecase interface {
	// Assign closes the device's current assignment (if any) and opens a new one for the target user.
	// Assigning a device to its current holder returns the current assignment unchanged.
	Assign(ctx context.Context, input *AssignDeviceInput) (*entity.DeviceAssignment, error)

	// GetHistory returns every assignment of the device newest-first. Index 0 is current only if flagged.
	GetHistory(ctx context.Context, caller entity.Identity, deviceID uuid.UUID) ([]*entity.DeviceAssignment, error)

	// DeleteDevice removes a device that has no current assignment.
	DeleteDevice(ctx context.Context, actorID, deviceID uuid.UUID) error

	CreateDevice(ctx context.Context, actorID uuid.UUID, input *DeviceInput) (*entity.Device, error)
	UpdateDevice(ctx context.Context, actorID, deviceID uuid.UUID, input *DeviceInput) (*entity.Device, error)

	// ListDevices returns devices together with their current holder.
	ListDevices(ctx context.Context, filter entity.DeviceFilter) ([]*entity.DeviceSummary, error)

	// MyDevices returns the devices currently assigned to the user.
	MyDevices(ctx context.Context, userID uuid.UUID) ([]*entity.AssignmentRecord, error)

	// DeviceLabel renders the printable QR label of a device as PNG.
	DeviceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error)
}
