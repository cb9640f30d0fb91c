package service

import (
	"github.com/google/uuid"
)

// LabelService renders scannable asset labels.
type LabelService interface {
	// GenerateDeviceLabel renders a QR code PNG pointing at the device.
	GenerateDeviceLabel(deviceID uuid.UUID) ([]byte, error)

	// ParseDeviceLabel extracts the device ID from scanned label content.
	ParseDeviceLabel(content string) (uuid.UUID, error)
}
