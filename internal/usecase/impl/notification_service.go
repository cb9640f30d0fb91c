package impl

import (
	"context"
	"log/slog"
	"time"

	"staffportal/config"
	deliverycontext "staffportal/internal/delivery/context"
	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	"staffportal/internal/domain/service"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	pushRepo         repository.PushRegistrationRepository
	feed             service.ChangeFeed
	pusher           service.PushService
	pushMinPriority  entity.NotificationPriority
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	PushRepo         repository.PushRegistrationRepository
	Feed             service.ChangeFeed
	Pusher           service.PushService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	minPriority := entity.PriorityHigh
	if params.Config != nil && params.Config.Notifications != nil {
		if p := entity.NotificationPriority(params.Config.Notifications.PushMinPriority); p.IsValid() {
			minPriority = p
		}
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		pushRepo:         params.PushRepo,
		feed:             params.Feed,
		pusher:           params.Pusher,
		pushMinPriority:  minPriority,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListActive retrieves the caller's non-archived notifications newest-first
func (s *notificationService) ListActive(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	notifications, err := s.notificationRepo.ListActive(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountUnread counts the caller's unread notifications
func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	return s.setRead(ctx, userID, id, true)
}

func (s *notificationService) MarkUnread(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	return s.setRead(ctx, userID, id, false)
}

func (s *notificationService) setRead(ctx context.Context, userID, id uuid.UUID, read bool) (*entity.Notification, error) {
	notification, err := s.notificationRepo.SetRead(ctx, userID, id, read, s.now())
	if err != nil {
		return nil, notificationError(err, "failed to update read state")
	}

	s.publish(ctx, entity.ChangeUpdate, notification)

	return notification, nil
}

// MarkAllRead marks the caller's unread notifications read in a single statement
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID, ids, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	for _, n := range updated {
		s.publish(ctx, entity.ChangeUpdate, n)
	}

	s.log(ctx).Debug("Marked notifications read", slog.String("userID", userID.String()), slog.Int("count", len(updated)))

	return len(updated), nil
}

// Archive hides a notification from the active list
func (s *notificationService) Archive(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := s.notificationRepo.Archive(ctx, userID, id, s.now())
	if err != nil {
		return notificationError(err, "failed to archive notification")
	}

	s.publish(ctx, entity.ChangeUpdate, notification)

	return nil
}

// Delete removes a notification permanently
func (s *notificationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := s.notificationRepo.Delete(ctx, userID, id)
	if err != nil {
		return notificationError(err, "failed to delete notification")
	}

	s.publish(ctx, entity.ChangeDelete, notification)

	return nil
}

// RecordClick stamps the click on a notification
func (s *notificationService) RecordClick(ctx context.Context, userID, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.notificationRepo.RecordClick(ctx, userID, id, s.now())
	if err != nil {
		return nil, notificationError(err, "failed to record click")
	}

	s.publish(ctx, entity.ChangeUpdate, notification)

	return notification, nil
}

// Create persists one notification per recipient and delivers them after all rows are stored
func (s *notificationService) Create(ctx context.Context, input *usecase.CreateNotificationInput) ([]*entity.Notification, error) {
	if err := validateNotificationInput(input); err != nil {
		return nil, err
	}

	notifications := usecase.BuildNotifications(input, s.now())
	for _, n := range notifications {
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			return nil, errors.Wrap(err, "failed to create notification")
		}
	}

	s.Deliver(ctx, notifications)

	return notifications, nil
}

// Deliver publishes INSERT events and pushes notifications at or above the configured priority
func (s *notificationService) Deliver(ctx context.Context, notifications []*entity.Notification) {
	for _, n := range notifications {
		s.publish(ctx, entity.ChangeInsert, n)

		if n.Priority.Rank() >= s.pushMinPriority.Rank() {
			s.push(ctx, n)
		}
	}
}

func (s *notificationService) publish(ctx context.Context, kind entity.ChangeKind, n *entity.Notification) {
	if s.feed == nil || n == nil {
		return
	}

	if err := s.feed.Publish(ctx, entity.ChangeEvent{Kind: kind, Record: n}); err != nil {
		s.log(ctx).Warn("Failed to publish notification change",
			slog.String("kind", string(kind)),
			slog.String("notificationID", n.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *notificationService) push(ctx context.Context, n *entity.Notification) {
	if s.pusher == nil {
		return
	}

	registrations, err := s.pushRepo.FindActiveByUser(ctx, n.UserID)
	if err != nil {
		s.log(ctx).Error("Failed to load push registrations", slog.String("userID", n.UserID.String()), slog.Any("error", err))

		return
	}
	if len(registrations) == 0 {
		return
	}

	tokens := make([]string, 0, len(registrations))
	for _, r := range registrations {
		tokens = append(tokens, r.FCMToken)
	}

	data := map[string]string{
		"notification_id": n.ID.String(),
		"type":            string(n.Type),
		"category":        n.Category,
		"priority":        string(n.Priority),
	}
	if n.LinkURL != "" {
		data["link_url"] = n.LinkURL
	}

	sent, failed, invalidTokens, err := s.pusher.SendBatchNotification(ctx, tokens, n.Title, n.Message, data)
	if err != nil {
		s.log(ctx).Error("Failed to push notification", slog.String("notificationID", n.ID.String()), slog.Any("error", err))

		return
	}

	s.log(ctx).Debug("Pushed notification",
		slog.String("notificationID", n.ID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	if len(invalidTokens) > 0 {
		if err := s.pushRepo.DeactivateTokens(ctx, invalidTokens); err != nil {
			s.log(ctx).Error("Failed to deactivate invalid push tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}
}

func validateNotificationInput(input *usecase.CreateNotificationInput) error {
	if input == nil || len(input.Recipients) == 0 {
		return domainerrors.ErrInvalidNotification.WrapMessage("at least one recipient is required")
	}
	if !input.Type.IsValid() {
		return domainerrors.ErrInvalidNotification.WrapMessage("unknown notification type")
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return domainerrors.ErrInvalidNotification.WrapMessage("unknown notification priority")
	}
	if input.Title == "" || input.Message == "" {
		return domainerrors.ErrInvalidNotification.WrapMessage("title and message are required")
	}

	return nil
}

func notificationError(err error, message string) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, message)
}
