package context

import (
	"log/slog"

	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetIdentity stores the authenticated caller in echo.Context.
// A request-scoped logger, if present, is rescoped to carry the caller's user id.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(userIDKey, identity.UserID)
	c.Set(rolesKey, identity.Roles)

	req := c.Request()
	if logger := GetLoggerOrDefault(req.Context(), nil); logger != nil {
		scoped := logger.With(slog.String("user_id", identity.UserID.String()))
		c.SetRequest(req.WithContext(WithLogger(req.Context(), scoped)))
	}
}

// GetIdentity extracts the authenticated caller from echo.Context.
// The second return value is false when the request was not authenticated.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	userID, ok := c.Get(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return entity.Identity{}, false
	}

	roles, _ := c.Get(rolesKey).(entity.Roles)

	return entity.Identity{UserID: userID, Roles: roles}, true
}
