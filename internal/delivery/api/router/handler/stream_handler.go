package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"staffportal/config"
	"staffportal/internal/delivery/api/response"
	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	"staffportal/internal/domain/service"
	"staffportal/internal/inbox"
	"staffportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	eventSnapshot = "snapshot"
	eventChange   = "change"

	defaultKeepAlive = 25 * time.Second
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Feed           service.ChangeFeed
	Config         *config.Config
	Logger         *slog.Logger
}

// StreamHandler serves the realtime notification stream as server-sent events.
type StreamHandler struct {
	notificationUC usecase.NotificationUsecase
	feed           service.ChangeFeed
	keepAlive      time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	keepAlive := defaultKeepAlive
	if params.Config != nil && params.Config.Feed != nil && params.Config.Feed.KeepAlive > 0 {
		keepAlive = params.Config.Feed.KeepAlive
	}

	return &StreamHandler{
		notificationUC: params.NotificationUC,
		feed:           params.Feed,
		keepAlive:      keepAlive,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// SnapshotEvent is the first event of a stream: the whole active list.
type SnapshotEvent struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int                `json:"unread_count"`
	Counts      inbox.Counts       `json:"counts"`
}

// ChangeEvent is sent for every change folded into the stream's list.
type ChangeEvent struct {
	Type        entity.ChangeKind `json:"type"`
	Record      NotificationView  `json:"record"`
	UnreadCount int               `json:"unread_count"`
}

// Stream handles GET /notifications/stream.
// The subscription is opened before the snapshot is loaded so no change between the two is lost.
func (h *StreamHandler) Stream(c echo.Context) error {
	identity, err := callerIdentity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	session := inbox.NewSession(identity.UserID, h.notificationUC, h.feed, logger)
	sub, err := session.Subscribe(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() { _ = sub.Close() }()

	if err := session.LoadAll(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	// the server write timeout must not cut a long-lived stream
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})

	items := session.Items()
	snapshot := SnapshotEvent{
		Items:       newNotificationViews(items, h.now()),
		UnreadCount: inbox.UnreadCount(items),
		Counts:      inbox.CategoryCounts(items),
	}
	if err := writeEvent(res, eventSnapshot, snapshot); err != nil {
		return err
	}

	logger.Debug("Notification stream opened", slog.String("user_id", identity.UserID.String()))

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case update, ok := <-sub.Updates():
			if !ok {
				logger.Debug("Notification stream ended by feed", slog.String("user_id", identity.UserID.String()))

				return nil
			}

			event := ChangeEvent{
				Type:        update.Event.Kind,
				Record:      newNotificationView(update.Event.Record, h.now()),
				UnreadCount: update.UnreadCount,
			}
			if err := writeEvent(res, eventChange, event); err != nil {
				return nil
			}
		}
	}
}

func writeEvent(res *echo.Response, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode stream event")
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
		return errors.Wrap(err, "failed to write stream event")
	}
	res.Flush()

	return nil
}
