package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"staffportal/config"
	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	"staffportal/internal/infra/pubsub"
	mockUsecase "staffportal/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sseEvent struct {
	name string
	data string
}

func readEvent(t *testing.T, r *bufio.Reader) sseEvent {
	t.Helper()

	var event sseEvent
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)

		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			if event.name != "" {
				return event
			}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event: "):
			event.name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			event.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestStreamHandler_Stream(t *testing.T) {
	logger := newDiscardLogger()
	hub := pubsub.NewHub(8, logger)
	t.Cleanup(func() { _ = hub.Close() })

	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	cfg := &config.Config{Feed: &config.FeedConfig{KeepAlive: time.Hour}}

	handler := NewStreamHandler(StreamHandlerParams{
		NotificationUC: notificationUC,
		Feed:           hub,
		Config:         cfg,
		Logger:         logger,
	})
	handler.now = func() time.Time { return testNow }

	existing := newNotification(testUserID, "Laptop assigned", entity.CategoryAssets, entity.PriorityNormal, time.Hour)
	notificationUC.EXPECT().ListActive(mock.Anything, testUserID, 0).Return([]*entity.Notification{existing}, nil).Once()

	e := echo.New()
	e.GET("/stream", handler.Stream, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, *staffIdentity())

			return next(c)
		}
	})
	server := httptest.NewServer(e)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	reader := bufio.NewReader(resp.Body)

	first := readEvent(t, reader)
	require.Equal(t, eventSnapshot, first.name)

	var snapshot struct {
		Items []struct {
			Title   string `json:"title"`
			TimeAgo string `json:"time_ago"`
		} `json:"items"`
		UnreadCount int `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(first.data), &snapshot))
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "1h ago", snapshot.Items[0].TimeAgo)
	assert.Equal(t, 1, snapshot.UnreadCount)

	// events of other users never reach the stream
	other := newNotification(uuid.New(), "Not yours", entity.CategoryTasks, entity.PriorityHigh, 0)
	require.NoError(t, hub.Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeInsert, Record: other}))

	fresh := newNotification(testUserID, "Review rota", entity.CategoryTasks, entity.PriorityHigh, 0)
	require.NoError(t, hub.Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeInsert, Record: fresh}))

	second := readEvent(t, reader)
	require.Equal(t, eventChange, second.name)

	var change struct {
		Type   entity.ChangeKind `json:"type"`
		Record struct {
			Title   string `json:"title"`
			TimeAgo string `json:"time_ago"`
		} `json:"record"`
		UnreadCount int `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(second.data), &change))
	assert.Equal(t, entity.ChangeInsert, change.Type)
	assert.Equal(t, "Review rota", change.Record.Title)
	assert.Equal(t, "Just now", change.Record.TimeAgo)
	assert.Equal(t, 2, change.UnreadCount)

	cancel()
	assert.Eventually(t, func() bool { return hub.SubscriberCount(testUserID) == 0 }, time.Second, 10*time.Millisecond)
}
