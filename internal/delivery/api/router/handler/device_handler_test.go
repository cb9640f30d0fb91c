package handler

import (
	"net/http"
	"testing"

	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	mockUsecase "staffportal/internal/mocks/usecase"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC}), deviceUC
}

func TestDeviceHandler_AssignDevice(t *testing.T) {
	deviceID := uuid.New()
	holderID := uuid.New()

	t.Run("actor is the caller", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		assignment := &entity.DeviceAssignment{ID: uuid.New(), DeviceID: deviceID, AssignedTo: holderID, AssignedBy: testUserID, IsCurrent: true}
		deviceUC.EXPECT().Assign(mock.Anything, &usecase.AssignDeviceInput{
			DeviceID:   deviceID,
			AssignedTo: holderID,
			ActorID:    testUserID,
			Notes:      "for the night shift",
		}).Return(assignment, nil).Once()

		body := `{"assigned_to":"` + holderID.String() + `","notes":"for the night shift"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/devices/"+deviceID.String()+"/assign", body, adminIdentity())
		require.NoError(t, handler.AssignDevice(withParam(c, "id", deviceID.String())))
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.DeviceAssignment
		decodeData(t, rec, &got)
		assert.Equal(t, assignment.ID, got.ID)
		assert.True(t, got.IsCurrent)
	})

	t.Run("missing holder fails validation", func(t *testing.T) {
		handler, _ := createTestDeviceHandler(t)

		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/devices/"+deviceID.String()+"/assign", `{"notes":"x"}`, adminIdentity())
		require.NoError(t, handler.AssignDevice(withParam(c, "id", deviceID.String())))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
	})

	t.Run("retired device", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().Assign(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDeviceRetired).Once()

		body := `{"assigned_to":"` + holderID.String() + `"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/devices/"+deviceID.String()+"/assign", body, adminIdentity())
		require.NoError(t, handler.AssignDevice(withParam(c, "id", deviceID.String())))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, domainerrors.ErrDeviceRetired.ErrorCode(), decodeError(t, rec).Code)
	})
}

func TestDeviceHandler_DeleteDevice(t *testing.T) {
	deviceID := uuid.New()

	t.Run("device with current assignment", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().DeleteDevice(mock.Anything, testUserID, deviceID).Return(domainerrors.ErrDeviceHasCurrentAssignment).Once()

		c, rec := newTestContext(http.MethodDelete, "/api/v1/admin/devices/"+deviceID.String(), "", adminIdentity())
		require.NoError(t, handler.DeleteDevice(withParam(c, "id", deviceID.String())))

		assert.Equal(t, http.StatusConflict, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, "DEVICE_HAS_CURRENT_ASSIGNMENT", info.Code)
		assert.Equal(t, domainerrors.ErrDeviceHasCurrentAssignment.Message(), info.Message)
	})

	t.Run("deleted", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().DeleteDevice(mock.Anything, testUserID, deviceID).Return(nil).Once()

		c, rec := newTestContext(http.MethodDelete, "/api/v1/admin/devices/"+deviceID.String(), "", adminIdentity())
		require.NoError(t, handler.DeleteDevice(withParam(c, "id", deviceID.String())))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeviceHandler_ListDevices(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   entity.DeviceFilter
	}{
		{name: "no filter", target: "/api/v1/admin/devices", want: entity.DeviceFilter{}},
		{name: "all statuses", target: "/api/v1/admin/devices?status=all&q=mac", want: entity.DeviceFilter{Search: "mac"}},
		{name: "one status", target: "/api/v1/admin/devices?status=maintenance", want: entity.DeviceFilter{Status: entity.DeviceMaintenance}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deviceUC := createTestDeviceHandler(t)

			deviceUC.EXPECT().ListDevices(mock.Anything, tt.want).Return([]*entity.DeviceSummary{}, nil).Once()

			c, rec := newTestContext(http.MethodGet, tt.target, "", adminIdentity())
			require.NoError(t, handler.ListDevices(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestDeviceHandler_CreateDevice(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		device := &entity.Device{ID: uuid.New(), Name: "ThinkPad X1", Type: "laptop", Status: entity.DeviceAvailable}
		deviceUC.EXPECT().CreateDevice(mock.Anything, testUserID, &usecase.DeviceInput{
			Name:         "ThinkPad X1",
			Type:         "laptop",
			SerialNumber: "PF-1234",
		}).Return(device, nil).Once()

		body := `{"device_name":"ThinkPad X1","device_type":"laptop","serial_number":"PF-1234"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/devices", body, adminIdentity())
		require.NoError(t, handler.CreateDevice(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		handler, _ := createTestDeviceHandler(t)

		body := `{"device_name":"ThinkPad X1","device_type":"laptop","status":"lost"}`
		c, rec := newTestContext(http.MethodPost, "/api/v1/admin/devices", body, adminIdentity())
		require.NoError(t, handler.CreateDevice(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"status": "oneof=available assigned maintenance retired"}, decodeError(t, rec).Details)
	})
}

func TestDeviceHandler_GetHistory(t *testing.T) {
	deviceID := uuid.New()

	t.Run("forbidden for unrelated staff", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		deviceUC.EXPECT().GetHistory(mock.Anything, *staffIdentity(), deviceID).Return(nil, domainerrors.ErrForbidden).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/history", "", staffIdentity())
		require.NoError(t, handler.GetHistory(withParam(c, "id", deviceID.String())))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("newest first", func(t *testing.T) {
		handler, deviceUC := createTestDeviceHandler(t)

		history := []*entity.DeviceAssignment{
			{ID: uuid.New(), DeviceID: deviceID, IsCurrent: true},
			{ID: uuid.New(), DeviceID: deviceID, HandoverNotes: "Reassigned to another user"},
		}
		deviceUC.EXPECT().GetHistory(mock.Anything, *staffIdentity(), deviceID).Return(history, nil).Once()

		c, rec := newTestContext(http.MethodGet, "/api/v1/devices/"+deviceID.String()+"/history", "", staffIdentity())
		require.NoError(t, handler.GetHistory(withParam(c, "id", deviceID.String())))
		require.Equal(t, http.StatusOK, rec.Code)

		var got []entity.DeviceAssignment
		decodeData(t, rec, &got)
		require.Len(t, got, 2)
		assert.True(t, got[0].IsCurrent)
		assert.False(t, got[1].IsCurrent)
	})
}

func TestDeviceHandler_MyDevices(t *testing.T) {
	handler, deviceUC := createTestDeviceHandler(t)

	deviceUC.EXPECT().MyDevices(mock.Anything, testUserID).Return([]*entity.AssignmentRecord{
		{Assignment: &entity.DeviceAssignment{IsCurrent: true}, Device: &entity.Device{Name: "Pixel 9"}},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/devices/mine", "", staffIdentity())
	require.NoError(t, handler.MyDevices(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.AssignmentRecord
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Pixel 9", got[0].Device.Name)
}

func TestDeviceHandler_DeviceLabel(t *testing.T) {
	handler, deviceUC := createTestDeviceHandler(t)
	deviceID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	deviceUC.EXPECT().DeviceLabel(mock.Anything, deviceID).Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/devices/"+deviceID.String()+"/label", "", adminIdentity())
	require.NoError(t, handler.DeviceLabel(withParam(c, "id", deviceID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
