// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"staffportal/internal/delivery/api/response"
	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// MessageResponse is returned by actions without a resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}

func callerIdentity(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter; nil means absent or "all".
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" || raw == "all" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a UUID")
	}

	return &id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(name + " must be a number")
	}

	return value, nil
}

// bindAndValidate binds the request body and runs its validation tags.
// It writes the 400 response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// NotificationView is a notification with the fields the portal renders next to it.
type NotificationView struct {
	*entity.Notification

	TimeAgo       string `json:"time_ago"`
	ActorInitials string `json:"actor_initials"`
}

func newNotificationView(n *entity.Notification, now time.Time) NotificationView {
	return NotificationView{
		Notification:  n,
		TimeAgo:       util.FormatRelativeTime(n.CreatedAt, now),
		ActorInitials: util.Initials(n.ActorName),
	}
}

func newNotificationViews(items []*entity.Notification, now time.Time) []NotificationView {
	views := make([]NotificationView, 0, len(items))
	for _, n := range items {
		views = append(views, newNotificationView(n, now))
	}

	return views
}
