package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffportal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	requestID := NewRequestIDMiddleware(logger)
	requestLogger := NewLoggerMiddleware(logger, cfg)

	handler := requestID.Process(requestLogger.Handle(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "no coffee")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/stream?access_token=secret&tab=unread", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.Equal(t, "access_token=REDACTED&tab=unread", line["query"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestRequestIDMiddleware_RejectsOversizedID(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen string
	handler := m.Process(func(c echo.Context) error {
		seen = c.Response().Header().Get(echo.HeaderXRequestID)

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, string(bytes.Repeat([]byte("a"), 200)))

	require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	assert.Len(t, seen, 36)
}
