package handler

import (
	"net/http"
	"net/url"

	"staffportal/internal/delivery/api/response"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushRegistrationHandlerParams holds dependencies for PushRegistrationHandler, injected by Fx.
type PushRegistrationHandlerParams struct {
	fx.In

	PushRegistrationUC usecase.PushRegistrationUsecase
}

// PushRegistrationHandler holds dependencies for push registration handlers
type PushRegistrationHandler struct {
	pushRegistrationUC usecase.PushRegistrationUsecase
}

// NewPushRegistrationHandler is the constructor for PushRegistrationHandler
func NewPushRegistrationHandler(params PushRegistrationHandlerParams) *PushRegistrationHandler {
	return &PushRegistrationHandler{
		pushRegistrationUC: params.PushRegistrationUC,
	}
}

// Register handles POST /push-registrations
func (h *PushRegistrationHandler) Register(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.PushClientInfo
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	registration, err := h.pushRegistrationUC.Register(c.Request().Context(), identity.UserID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, registration)
}

// Unregister handles DELETE /push-registrations/:token
func (h *PushRegistrationHandler) Unregister(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := url.PathUnescape(c.Param("token"))
	if err != nil || token == "" {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WrapMessage("invalid token"))
	}

	if err := h.pushRegistrationUC.Unregister(c.Request().Context(), identity.UserID, token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Push registration removed"})
}
