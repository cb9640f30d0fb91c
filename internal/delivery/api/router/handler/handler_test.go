package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffportal/internal/delivery/api/response"
	"staffportal/internal/delivery/api/validator"
	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	testNow    = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	testUserID = uuid.MustParse("3b9f3d2c-8a61-4f0e-b1c7-5d2e9a4f6c10")
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func staffIdentity() *entity.Identity {
	return &entity.Identity{UserID: testUserID, Roles: entity.Roles{entity.RoleStaff}}
}

func adminIdentity() *entity.Identity {
	return &entity.Identity{UserID: testUserID, Roles: entity.Roles{entity.RoleAdmin}}
}

// newTestContext builds an echo context for a JSON request. A nil identity leaves the request anonymous.
func newTestContext(method, target, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if identity != nil {
		deliverycontext.SetIdentity(c, *identity)
	}

	return c, rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)

	return c
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return *envelope.Error
}

func newNotification(userID uuid.UUID, title, category string, priority entity.NotificationPriority, age time.Duration) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      entity.NotificationSystem,
		Category:  category,
		Priority:  priority,
		Title:     title,
		Message:   title + " message",
		ActorName: "Dana Scully",
		CreatedAt: testNow.Add(-age),
	}
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "", nil)

	require.NoError(t, HealthCheck(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]string
	decodeData(t, rec, &data)
	require.Equal(t, "ok", data["status"])
}
