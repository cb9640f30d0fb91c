package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"staffportal/config"
	"staffportal/internal/domain/entity"
	domainerrors "staffportal/internal/domain/errors"
	"staffportal/internal/domain/repository"
	mockRepo "staffportal/internal/mocks/repository"
	mockSvc "staffportal/internal/mocks/service"
	"staffportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          *notificationService
	notificationRepo *mockRepo.MockNotificationRepository
	pushRepo         *mockRepo.MockPushRegistrationRepository
	feed             *mockSvc.MockChangeFeed
	pusher           *mockSvc.MockPushService
	now              time.Time
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	pushRepo := mockRepo.NewMockPushRegistrationRepository(t)
	feed := mockSvc.NewMockChangeFeed(t)
	pusher := mockSvc.NewMockPushService(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		PushRepo:         pushRepo,
		Feed:             feed,
		Pusher:           pusher,
		Config:           &config.Config{Notifications: &config.NotificationsConfig{PushMinPriority: "high"}},
		Logger:           newDiscardLogger(),
	}).(*notificationService)

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	return notificationServiceFixtures{
		service:          svc,
		notificationRepo: notificationRepo,
		pushRepo:         pushRepo,
		feed:             feed,
		pusher:           pusher,
		now:              now,
	}
}

func TestNotificationService_MarkRead_PublishesUpdate(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	updated := &entity.Notification{ID: id, UserID: userID, Read: true, ReadAt: &fx.now}

	fx.notificationRepo.EXPECT().SetRead(ctx, userID, id, true, fx.now).Return(updated, nil)
	fx.feed.EXPECT().Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeUpdate, Record: updated}).Return(nil)

	got, err := fx.service.MarkRead(ctx, userID, id)
	require.NoError(t, err)
	assert.True(t, got.Read)
	assert.Equal(t, fx.now, *got.ReadAt)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().SetRead(ctx, userID, id, true, fx.now).Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.MarkRead(ctx, userID, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_MarkUnread_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	updated := &entity.Notification{ID: id, UserID: userID}

	fx.notificationRepo.EXPECT().SetRead(ctx, userID, id, false, fx.now).Return(updated, nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("feed closed"))

	got, err := fx.service.MarkUnread(ctx, userID, id)
	require.NoError(t, err)
	assert.False(t, got.Read)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	rows := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Read: true},
		{ID: uuid.New(), UserID: userID, Read: true},
	}

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID, []uuid.UUID(nil), fx.now).Return(rows, nil)
	fx.feed.EXPECT().Publish(ctx, mock.AnythingOfType("entity.ChangeEvent")).Return(nil).Times(2)

	count, err := fx.service.MarkAllRead(ctx, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkAllRead_RepositoryError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New()}

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID, ids, fx.now).Return(nil, errors.New("connection reset"))

	count, err := fx.service.MarkAllRead(ctx, userID, ids)
	require.Error(t, err)
	assert.Zero(t, count)
	assert.Contains(t, err.Error(), "failed to mark notifications read")
}

func TestNotificationService_Archive(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	archived := &entity.Notification{ID: id, UserID: userID, Archived: true, ArchivedAt: &fx.now}

	fx.notificationRepo.EXPECT().Archive(ctx, userID, id, fx.now).Return(archived, nil)
	fx.feed.EXPECT().Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeUpdate, Record: archived}).Return(nil)

	require.NoError(t, fx.service.Archive(ctx, userID, id))
}

func TestNotificationService_Delete(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	deleted := &entity.Notification{ID: id, UserID: userID}

	fx.notificationRepo.EXPECT().Delete(ctx, userID, id).Return(deleted, nil)
	fx.feed.EXPECT().Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeDelete, Record: deleted}).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, userID, id))
}

func TestNotificationService_Delete_NotOwned(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().Delete(ctx, userID, id).Return(nil, repository.ErrNotificationNotFound)

	err := fx.service.Delete(ctx, userID, id)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestNotificationService_RecordClick(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()
	clicked := &entity.Notification{ID: id, UserID: userID, Clicked: true, ClickedAt: &fx.now, LinkURL: "/devices"}

	fx.notificationRepo.EXPECT().RecordClick(ctx, userID, id, fx.now).Return(clicked, nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)

	got, err := fx.service.RecordClick(ctx, userID, id)
	require.NoError(t, err)
	assert.True(t, got.Clicked)
	assert.Equal(t, "/devices", got.LinkURL)
}

func TestNotificationService_Create_NormalPrioritySkipsPush(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipients := []uuid.UUID{uuid.New(), uuid.New()}
	actor := &entity.Profile{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}

	fx.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil).Times(2)
	fx.feed.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e entity.ChangeEvent) bool { return e.Kind == entity.ChangeInsert })).
		Return(nil).
		Times(2)

	created, err := fx.service.Create(ctx, &usecase.CreateNotificationInput{
		Recipients: recipients,
		Type:       entity.NotificationAnnouncement,
		Category:   entity.CategorySystem,
		Title:      "Office closed",
		Message:    "The office is closed on Friday.",
		Actor:      actor,
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	for i, n := range created {
		assert.Equal(t, recipients[i], n.UserID)
		assert.Equal(t, entity.PriorityNormal, n.Priority)
		assert.Equal(t, "Ada Lovelace", n.ActorName)
		assert.Equal(t, fx.now, n.CreatedAt)
		assert.False(t, n.Read)
	}
}

func TestNotificationService_Create_UrgentIsPushedAndInvalidTokensDeactivated(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipient := uuid.New()
	registrations := []*entity.PushRegistration{
		{ID: uuid.New(), UserID: recipient, FCMToken: "good"},
		{ID: uuid.New(), UserID: recipient, FCMToken: "stale"},
	}

	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)
	fx.pushRepo.EXPECT().FindActiveByUser(ctx, recipient).Return(registrations, nil)
	fx.pusher.EXPECT().
		SendBatchNotification(ctx, []string{"good", "stale"}, "Server down", "Production is unreachable.", mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	fx.pushRepo.EXPECT().DeactivateTokens(ctx, []string{"stale"}).Return(nil)

	_, err := fx.service.Create(ctx, &usecase.CreateNotificationInput{
		Recipients: []uuid.UUID{recipient},
		Type:       entity.NotificationSystem,
		Category:   entity.CategorySystem,
		Priority:   entity.PriorityUrgent,
		Title:      "Server down",
		Message:    "Production is unreachable.",
	})
	require.NoError(t, err)
}

func TestNotificationService_Create_PushFailureIsNotFatal(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipient := uuid.New()

	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)
	fx.pushRepo.EXPECT().FindActiveByUser(ctx, recipient).Return(nil, errors.New("timeout"))

	_, err := fx.service.Create(ctx, &usecase.CreateNotificationInput{
		Recipients: []uuid.UUID{recipient},
		Type:       entity.NotificationSystem,
		Category:   entity.CategorySystem,
		Priority:   entity.PriorityHigh,
		Title:      "Heads up",
		Message:    "Maintenance tonight.",
	})
	require.NoError(t, err)
}

func TestNotificationService_Create_Validation(t *testing.T) {
	fx := createTestNotificationService(t)

	tests := []struct {
		name  string
		input *usecase.CreateNotificationInput
	}{
		{"nil input", nil},
		{"no recipients", &usecase.CreateNotificationInput{Type: entity.NotificationSystem, Title: "t", Message: "m"}},
		{"unknown type", &usecase.CreateNotificationInput{Recipients: []uuid.UUID{uuid.New()}, Type: "party", Title: "t", Message: "m"}},
		{"unknown priority", &usecase.CreateNotificationInput{Recipients: []uuid.UUID{uuid.New()}, Type: entity.NotificationSystem, Priority: "meh", Title: "t", Message: "m"}},
		{"missing title", &usecase.CreateNotificationInput{Recipients: []uuid.UUID{uuid.New()}, Type: entity.NotificationSystem, Message: "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidNotification))
		})
	}
}

func TestNotificationService_Create_RepositoryError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Create(ctx, &usecase.CreateNotificationInput{
		Recipients: []uuid.UUID{uuid.New()},
		Type:       entity.NotificationSystem,
		Category:   entity.CategorySystem,
		Title:      "t",
		Message:    "m",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create notification")
}
