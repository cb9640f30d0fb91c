package handler

import (
	"net/http"

	"staffportal/internal/delivery/api/response"
	"staffportal/internal/domain/entity"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler holds dependencies for device ledger handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
	}
}

// AssignDeviceRequest represents the request body for assigning a device
type AssignDeviceRequest struct {
	AssignedTo uuid.UUID `json:"assigned_to" validate:"required"`
	Notes      string    `json:"notes" validate:"omitempty,max=1000"`
}

// MyDevices handles GET /devices/mine
func (h *DeviceHandler) MyDevices(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.deviceUC.MyDevices(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// GetHistory handles GET /devices/:id/history
func (h *DeviceHandler) GetHistory(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	history, err := h.deviceUC.GetHistory(c.Request().Context(), identity, deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ListDevices handles GET /admin/devices?status=&q=
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	filter := entity.DeviceFilter{
		Status: entity.DeviceStatus(c.QueryParam("status")),
		Search: c.QueryParam("q"),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// CreateDevice handles POST /admin/devices
func (h *DeviceHandler) CreateDevice(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.CreateDevice(c.Request().Context(), identity.UserID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// UpdateDevice handles PUT /admin/devices/:id
func (h *DeviceHandler) UpdateDevice(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	device, err := h.deviceUC.UpdateDevice(c.Request().Context(), identity.UserID, deviceID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeleteDevice handles DELETE /admin/devices/:id
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeleteDevice(c.Request().Context(), identity.UserID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Device deleted"})
}

// AssignDevice handles POST /admin/devices/:id/assign
func (h *DeviceHandler) AssignDevice(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignDeviceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	assignment, err := h.deviceUC.Assign(c.Request().Context(), &usecase.AssignDeviceInput{
		DeviceID:   deviceID,
		AssignedTo: req.AssignedTo,
		ActorID:    identity.UserID,
		Notes:      req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment)
}

// DeviceLabel handles GET /admin/devices/:id/label and answers a PNG
func (h *DeviceHandler) DeviceLabel(c echo.Context) error {
	deviceID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.deviceUC.DeviceLabel(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="device-`+deviceID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
