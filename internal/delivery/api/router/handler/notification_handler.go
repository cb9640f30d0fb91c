package handler

import (
	"context"
	"net/http"
	"time"

	"staffportal/internal/delivery/api/response"
	"staffportal/internal/domain/entity"
	"staffportal/internal/inbox"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	ProfileUC      usecase.ProfileUsecase
}

// NotificationHandler serves the caller's notifications and the announcement producer.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	profileUC      usecase.ProfileUsecase
	now            func() time.Time
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		profileUC:      params.ProfileUC,
		now:            time.Now,
	}
}

// NotificationListResponse is the filtered list together with the tab badges of the whole list.
type NotificationListResponse struct {
	Items  []NotificationView `json:"items"`
	Counts inbox.Counts       `json:"counts"`
}

// ListNotifications handles GET /notifications?tab=&priority=&q=
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.notificationUC.ListActive(c.Request().Context(), identity.UserID, 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := inbox.Filter{
		Tab:      c.QueryParam("tab"),
		Priority: c.QueryParam("priority"),
		Query:    c.QueryParam("q"),
	}

	return response.Success(c, http.StatusOK, NotificationListResponse{
		Items:  newNotificationViews(filter.Apply(items), h.now()),
		Counts: inbox.CategoryCounts(items),
	})
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	count, err := h.notificationUC.CountUnread(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread_count": count})
}

// MarkAllReadRequest optionally restricts mark-all-read to some notifications.
type MarkAllReadRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"omitempty,max=500"`
}

// MarkAllRead handles POST /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MarkAllReadRequest
	if c.Request().ContentLength != 0 {
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), identity.UserID, req.IDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"updated": updated})
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	return h.setRead(c, h.notificationUC.MarkRead)
}

// MarkUnread handles POST /notifications/:id/unread
func (h *NotificationHandler) MarkUnread(c echo.Context) error {
	return h.setRead(c, h.notificationUC.MarkUnread)
}

func (h *NotificationHandler) setRead(c echo.Context, apply func(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error)) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notification, err := apply(c.Request().Context(), identity.UserID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNotificationView(notification, h.now()))
}

// Archive handles POST /notifications/:id/archive
func (h *NotificationHandler) Archive(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.Archive(c.Request().Context(), identity.UserID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Notification archived"})
}

// Delete handles DELETE /notifications/:id
func (h *NotificationHandler) Delete(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.notificationUC.Delete(c.Request().Context(), identity.UserID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Notification deleted"})
}

// RecordClick handles POST /notifications/:id/click. Navigation is left to the client.
func (h *NotificationHandler) RecordClick(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	clicked, err := h.notificationUC.RecordClick(ctx, identity.UserID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !clicked.Read {
		if _, err := h.notificationUC.MarkRead(ctx, identity.UserID, id); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"link_url": clicked.LinkURL})
}

// Announce handles POST /admin/notifications, producing one notification per recipient.
func (h *NotificationHandler) Announce(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CreateNotificationInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	actor, err := h.profileUC.GetProfile(ctx, identity.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	req.Actor = actor

	notifications, err := h.notificationUC.Create(ctx, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"created": len(notifications)})
}
