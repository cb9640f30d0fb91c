package inbox

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"staffportal/internal/domain/entity"
	"staffportal/internal/infra/pubsub"
	mockUsecase "staffportal/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixtures struct {
	session *Session
	store   *mockUsecase.MockNotificationUsecase
	hub     *pubsub.Hub
	userID  uuid.UUID
}

func createTestSession(t *testing.T) sessionFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mockUsecase.NewMockNotificationUsecase(t)
	hub := pubsub.NewHub(8, logger)
	t.Cleanup(func() { _ = hub.Close() })

	userID := uuid.MustParse("7f1c2d6e-5a4b-4c3d-9e8f-0a1b2c3d4e5f")
	session := NewSession(userID, store, hub, logger)
	session.now = func() time.Time { return baseTime }

	return sessionFixtures{session: session, store: store, hub: hub, userID: userID}
}

// loaded returns a session holding five notifications, three of them unread.
func loaded(t *testing.T, fx sessionFixtures) []*entity.Notification {
	t.Helper()

	items := make([]*entity.Notification, 0, 5)
	for i, title := range []string{"n1", "n2", "n3", "n4", "n5"} {
		n := newNotification(title, time.Duration(i)*time.Hour)
		if i >= 3 {
			n.MarkRead(baseTime.Add(-time.Hour))
		}
		items = append(items, n)
	}

	fx.store.EXPECT().ListActive(mock.Anything, fx.userID, 0).Return(items, nil).Once()
	require.NoError(t, fx.session.LoadAll(context.Background()))

	return items
}

func waitUpdate(t *testing.T, sub *Subscription) Update {
	t.Helper()

	select {
	case update, ok := <-sub.Updates():
		require.True(t, ok, "updates closed unexpectedly")

		return update
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")

		return Update{}
	}
}

func TestSession_LoadAll_FailureKeepsPriorList(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)

	fx.store.EXPECT().ListActive(mock.Anything, fx.userID, 0).Return(nil, errors.New("connection reset")).Once()

	err := fx.session.LoadAll(context.Background())
	require.Error(t, err)
	assert.Error(t, fx.session.Err())
	assert.Equal(t, titles(items), titles(fx.session.Items()))

	fx.store.EXPECT().ListActive(mock.Anything, fx.userID, 0).Return(items[:2], nil).Once()
	require.NoError(t, fx.session.LoadAll(context.Background()))
	assert.NoError(t, fx.session.Err())
	assert.Len(t, fx.session.Items(), 2)
}

func TestSession_MarkRead_Optimistic(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[0]

	persisted := target.Clone()
	persisted.MarkRead(baseTime.Add(time.Second))

	fx.store.EXPECT().
		MarkRead(mock.Anything, fx.userID, target.ID).
		RunAndReturn(func(_ context.Context, _, _ uuid.UUID) (*entity.Notification, error) {
			// The local flip is visible before the server answers.
			current := fx.session.Items()[0]
			assert.True(t, current.Read)
			assert.Equal(t, baseTime, *current.ReadAt)

			return persisted, nil
		})

	require.NoError(t, fx.session.MarkRead(context.Background(), target.ID))

	current := fx.session.Items()[0]
	assert.Same(t, persisted, current)
	assert.False(t, target.Read, "loaded records are never mutated")
}

func TestSession_MarkRead_FailureRestores(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[1]

	fx.store.EXPECT().MarkRead(mock.Anything, fx.userID, target.ID).Return(nil, errors.New("timeout"))

	err := fx.session.MarkRead(context.Background(), target.ID)
	require.Error(t, err)

	current := fx.session.Items()[1]
	assert.Same(t, target, current)
	assert.False(t, current.Read)
	assert.Nil(t, current.ReadAt)
}

func TestSession_MarkRead_FeedUpdateDuringFlightWins(t *testing.T) {
	tests := []struct {
		name    string
		persist error
	}{
		{name: "persist fails", persist: errors.New("timeout")},
		{name: "persist succeeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSession(t)
			items := loaded(t, fx)
			target := items[1]

			edited := target.Clone()
			edited.Title = "edited by feed"

			persisted := target.Clone()
			persisted.MarkRead(baseTime)

			fx.store.EXPECT().
				MarkRead(mock.Anything, fx.userID, target.ID).
				RunAndReturn(func(_ context.Context, _, _ uuid.UUID) (*entity.Notification, error) {
					fx.session.Apply(entity.ChangeEvent{Kind: entity.ChangeUpdate, Record: edited})
					if tt.persist != nil {
						return nil, tt.persist
					}

					return persisted, nil
				})

			err := fx.session.MarkRead(context.Background(), target.ID)
			if tt.persist != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			current := fx.session.Items()[1]
			assert.Same(t, edited, current)
			assert.Equal(t, "edited by feed", current.Title)
		})
	}
}

func TestSession_MarkUnread(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[4]

	persisted := target.Clone()
	persisted.MarkUnread()
	fx.store.EXPECT().MarkUnread(mock.Anything, fx.userID, target.ID).Return(persisted, nil)

	require.NoError(t, fx.session.MarkUnread(context.Background(), target.ID))
	assert.Equal(t, 4, UnreadCount(fx.session.Items()))
}

func TestSession_MarkAllRead(t *testing.T) {
	fx := createTestSession(t)
	loaded(t, fx)
	require.Equal(t, 3, UnreadCount(fx.session.Items()))

	fx.store.EXPECT().MarkAllRead(mock.Anything, fx.userID, []uuid.UUID(nil)).Return(3, nil).Once()

	count, err := fx.session.MarkAllRead(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	items := fx.session.Items()
	assert.Len(t, items, 5)
	assert.Zero(t, UnreadCount(items))
	for _, n := range items {
		assert.True(t, n.Read)
		assert.NotNil(t, n.ReadAt)
	}
}

func TestSession_MarkAllRead_Failure(t *testing.T) {
	fx := createTestSession(t)
	loaded(t, fx)

	fx.store.EXPECT().MarkAllRead(mock.Anything, fx.userID, []uuid.UUID(nil)).Return(0, errors.New("rpc failed"))

	_, err := fx.session.MarkAllRead(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, UnreadCount(fx.session.Items()))
}

func TestSession_ArchiveAndDelete(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	ctx := context.Background()

	fx.store.EXPECT().Archive(mock.Anything, fx.userID, items[0].ID).Return(errors.New("denied")).Once()
	require.Error(t, fx.session.Archive(ctx, items[0].ID))
	assert.Len(t, fx.session.Items(), 5, "record stays visible when archiving fails")

	fx.store.EXPECT().Archive(mock.Anything, fx.userID, items[0].ID).Return(nil).Once()
	require.NoError(t, fx.session.Archive(ctx, items[0].ID))

	fx.store.EXPECT().Delete(mock.Anything, fx.userID, items[1].ID).Return(errors.New("denied")).Once()
	require.Error(t, fx.session.Delete(ctx, items[1].ID))
	assert.Len(t, fx.session.Items(), 4)

	fx.store.EXPECT().Delete(mock.Anything, fx.userID, items[1].ID).Return(nil).Once()
	require.NoError(t, fx.session.Delete(ctx, items[1].ID))

	assert.Equal(t, []string{"n3", "n4", "n5"}, titles(fx.session.Items()))
}

func TestSession_RecordClick(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[2]

	read := target.Clone()
	read.MarkRead(baseTime)
	clicked := read.Clone()
	clicked.Clicked = true
	clicked.ClickedAt = &baseTime
	clicked.LinkURL = "/devices"

	fx.store.EXPECT().MarkRead(mock.Anything, fx.userID, target.ID).Return(read, nil)
	fx.store.EXPECT().RecordClick(mock.Anything, fx.userID, target.ID).Return(clicked, nil)

	link, err := fx.session.RecordClick(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "/devices", link)
	assert.True(t, fx.session.Items()[2].Clicked)
}

func TestSession_RecordClick_AlreadyReadSkipsMarkRead(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[3]

	clicked := target.Clone()
	clicked.Clicked = true
	fx.store.EXPECT().RecordClick(mock.Anything, fx.userID, target.ID).Return(clicked, nil)

	link, err := fx.session.RecordClick(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Empty(t, link)
}

func TestSession_RecordClick_MarkReadFailureStillClicks(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	target := items[0]

	clicked := target.Clone()
	clicked.Clicked = true
	clicked.ClickedAt = &baseTime
	clicked.LinkURL = "/devices/mine"

	fx.store.EXPECT().MarkRead(mock.Anything, fx.userID, target.ID).Return(nil, errors.New("timeout"))
	fx.store.EXPECT().RecordClick(mock.Anything, fx.userID, target.ID).Return(clicked, nil)

	link, err := fx.session.RecordClick(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "/devices/mine", link)
	assert.True(t, fx.session.Items()[0].Clicked)
}

func TestSession_Subscribe_FoldsEvents(t *testing.T) {
	fx := createTestSession(t)
	items := loaded(t, fx)
	ctx := context.Background()

	sub, err := fx.session.Subscribe(ctx)
	require.NoError(t, err)
	defer sub.Close()

	inserted := newNotification("fresh", -time.Minute)
	inserted.UserID = fx.userID
	require.NoError(t, fx.hub.Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeInsert, Record: inserted}))

	update := waitUpdate(t, sub)
	assert.Equal(t, entity.ChangeInsert, update.Event.Kind)
	assert.Equal(t, 4, update.UnreadCount)
	assert.Equal(t, "fresh", fx.session.Items()[0].Title)

	deleted := items[0].Clone()
	deleted.UserID = fx.userID
	require.NoError(t, fx.hub.Publish(ctx, entity.ChangeEvent{Kind: entity.ChangeDelete, Record: deleted}))

	update = waitUpdate(t, sub)
	assert.Equal(t, entity.ChangeDelete, update.Event.Kind)
	assert.Equal(t, 3, update.UnreadCount)
	assert.Equal(t, []string{"fresh", "n2", "n3", "n4", "n5"}, titles(fx.session.Items()))
}

func TestSession_Subscribe_Once(t *testing.T) {
	fx := createTestSession(t)
	ctx := context.Background()

	sub, err := fx.session.Subscribe(ctx)
	require.NoError(t, err)

	_, err = fx.session.Subscribe(ctx)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close())
	assert.NoError(t, fx.session.Close())

	// After closing, the updates channel drains and a new subscription may be opened.
	for range sub.Updates() {
	}
	again, err := fx.session.Subscribe(ctx)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestSession_Subscribe_EndsWithFeed(t *testing.T) {
	fx := createTestSession(t)

	sub, err := fx.session.Subscribe(context.Background())
	require.NoError(t, err)

	require.NoError(t, fx.hub.Close())

	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription did not end with the feed")
	}
	assert.NoError(t, sub.Close())
}

func TestSession_Subscribe_EndsWithContext(t *testing.T) {
	fx := createTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := fx.session.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription did not end with its context")
	}
	assert.Zero(t, fx.hub.SubscriberCount(fx.userID))
}
