package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"staffportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultLabelSize = 256

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewLabelService creates a device label renderer. Labels encode baseURL/<device id>.
func NewLabelService(size int, errorCorrectionLevel, baseURL string) service.LabelService {
	if size <= 0 {
		size = defaultLabelSize
	}

	return &labelService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// content returns the text encoded in a device label.
func (s *labelService) content(deviceID uuid.UUID) string {
	if s.baseURL == "" {
		return deviceID.String()
	}

	return s.baseURL + "/" + deviceID.String()
}

// GenerateDeviceLabel renders a QR code PNG pointing at the device.
func (s *labelService) GenerateDeviceLabel(deviceID uuid.UUID) ([]byte, error) {
	if deviceID == uuid.Nil {
		return nil, fmt.Errorf("device ID is required")
	}

	qrCode, err := qrcode.New(s.content(deviceID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDeviceLabel accepts either a bare device ID or a label URL ending in one.
func (s *labelService) ParseDeviceLabel(content string) (uuid.UUID, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return uuid.Nil, fmt.Errorf("label content is empty")
	}

	candidate := content
	if u, err := url.Parse(content); err == nil && u.Scheme != "" {
		candidate = path.Base(u.Path)
	}

	deviceID, err := uuid.Parse(candidate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse device ID: %w", err)
	}

	return deviceID, nil
}
