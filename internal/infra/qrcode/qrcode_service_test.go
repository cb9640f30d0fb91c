package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"high", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestLabelService_GenerateDeviceLabel(t *testing.T) {
	svc := NewLabelService(256, "M", "https://portal.example.com/devices/")

	png, err := svc.GenerateDeviceLabel(uuid.New())
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestLabelService_GenerateDeviceLabel_DefaultsSize(t *testing.T) {
	svc := NewLabelService(0, "", "")

	png, err := svc.GenerateDeviceLabel(uuid.New())
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestLabelService_GenerateDeviceLabel_RejectsNilID(t *testing.T) {
	svc := NewLabelService(128, "M", "")

	_, err := svc.GenerateDeviceLabel(uuid.Nil)
	assert.Error(t, err)
}

func TestLabelService_ContentRoundTrip(t *testing.T) {
	deviceID := uuid.New()

	withURL := NewLabelService(128, "M", "https://portal.example.com/devices/").(*labelService)
	assert.Equal(t, "https://portal.example.com/devices/"+deviceID.String(), withURL.content(deviceID))

	parsed, err := withURL.ParseDeviceLabel(withURL.content(deviceID))
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)

	bare := NewLabelService(128, "M", "").(*labelService)
	parsed, err = bare.ParseDeviceLabel(bare.content(deviceID))
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)
}

func TestLabelService_ParseDeviceLabel_Invalid(t *testing.T) {
	svc := NewLabelService(128, "M", "")

	tests := []string{"", "   ", "not-a-uuid", "https://portal.example.com/devices/abc"}
	for _, content := range tests {
		t.Run(content, func(t *testing.T) {
			_, err := svc.ParseDeviceLabel(content)
			assert.Error(t, err)
		})
	}
}
